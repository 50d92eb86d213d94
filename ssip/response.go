package ssip

import "strconv"

// CheckStatus validates that f's status code is exactly want, returning
// *SsipError if the code signals failure or *UnexpectedStatusError if it is
// a different (but non-failure) success code than expected.
func CheckStatus(f Frame, want ReturnCode) error {
	if f.Status.Code.IsFailure() {
		return &SsipError{Status: f.Status}
	}
	if f.Status.Code != want {
		return &UnexpectedStatusError{Code: f.Status.Code}
	}
	return nil
}

// DisambiguateCursorSetFirst resolves code 220's two meanings: it reports
// CodeHistoryCurSetFirst only when the status message is exactly
// "OK CURSOR SET FIRST"; every other 220 is CodeNotificationSet.
func DisambiguateCursorSetFirst(f Frame) ReturnCode {
	if f.Status.Code != 220 {
		return f.Status.Code
	}
	if f.Status.Message == msgCursorSetFirst {
		return CodeHistoryCurSetFirst
	}
	return CodeNotificationSet
}

func requireLines(f Frame, n int) error {
	if len(f.Lines) < n {
		return ErrTooFewLines
	}
	if len(f.Lines) > n {
		return ErrTooManyLines
	}
	return nil
}

// DecodeMessageID parses the single data line of a MESSAGE_QUEUED-style
// response as a queued message identifier.
func DecodeMessageID(f Frame) (MessageID, error) {
	s, err := singleLine(f)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, invalidData("invalid message id: %q", s)
	}
	return MessageID(v), nil
}

// DecodeClientID parses the single data line of a HISTORY GET CLIENT_ID
// response.
func DecodeClientID(f Frame) (ClientID, error) {
	s, err := singleLine(f)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, invalidData("invalid client id: %q", s)
	}
	return ClientID(v), nil
}

// DecodeString returns the single data line verbatim, for responses like
// GET LANGUAGE or HISTORY GET MESSAGE.
func DecodeString(f Frame) (string, error) {
	return singleLine(f)
}

// DecodeU8 parses the single data line as an unsigned small integer, for
// responses like GET VOLUME when reported unsigned.
func DecodeU8(f Frame) (uint8, error) {
	s, err := singleLine(f)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, invalidData("invalid unsigned integer: %q", s)
	}
	return uint8(v), nil
}

// DecodeI8 parses the single data line as a signed integer in [-100, 100],
// for responses like GET RATE, GET PITCH, GET VOLUME.
func DecodeI8(f Frame) (int8, error) {
	s, err := singleLine(f)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return 0, invalidData("invalid signed integer: %q", s)
	}
	return int8(v), nil
}

// DecodeCursorPos parses the single data line as a history cursor position.
func DecodeCursorPos(f Frame) (uint16, error) {
	s, err := singleLine(f)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, invalidData("invalid cursor position: %q", s)
	}
	return uint16(v), nil
}

// DecodeLines returns every data line verbatim, for responses like
// HISTORY GET CLIENT_MESSAGES or LIST OUTPUT_MODULES.
func DecodeLines(f Frame) ([]string, error) {
	return f.Lines, nil
}

// DecodeSynthesisVoices parses every data line of a LIST SYNTHESIS_VOICES
// response.
func DecodeSynthesisVoices(f Frame) ([]SynthesisVoice, error) {
	voices := make([]SynthesisVoice, 0, len(f.Lines))
	for _, l := range f.Lines {
		v, err := parseSynthesisVoice(l)
		if err != nil {
			return nil, err
		}
		voices = append(voices, v)
	}
	return voices, nil
}

// DecodeHistoryClients parses every data line of a HISTORY GET CLIENT_LIST
// response.
func DecodeHistoryClients(f Frame) ([]HistoryClientStatus, error) {
	clients := make([]HistoryClientStatus, 0, len(f.Lines))
	for _, l := range f.Lines {
		c, err := parseHistoryClientStatus(l)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, nil
}

func singleLine(f Frame) (string, error) {
	if err := requireLines(f, 1); err != nil {
		return "", err
	}
	return f.Lines[0], nil
}

// DecodeEvent parses a 700-705 notification frame into an Event.
//
// Every event frame carries the message id as its first data line and the
// client id as its second. Index-mark events additionally carry the mark
// name as their third data line, at index 2 — not index 3, which is where
// the upstream Rust client's receive_event helper mistakenly read it from.
func DecodeEvent(f Frame) (Event, error) {
	code := f.Status.Code
	if !code.IsEvent() {
		return Event{}, invalidData("not an event code: %d", code)
	}
	if len(f.Lines) < 2 {
		return Event{}, ErrTooFewLines
	}
	id := EventID{Message: f.Lines[0], Client: f.Lines[1]}

	switch code {
	case EventCodeIndexMark:
		if err := requireLines(f, 3); err != nil {
			return Event{}, err
		}
		return Event{Type: EventIndexMark, ID: id, Mark: f.Lines[2]}, nil
	case EventCodeBegin:
		if err := requireLines(f, 2); err != nil {
			return Event{}, err
		}
		return Event{Type: EventBegin, ID: id}, nil
	case EventCodeEnd:
		if err := requireLines(f, 2); err != nil {
			return Event{}, err
		}
		return Event{Type: EventEnd, ID: id}, nil
	case EventCodeCancel:
		if err := requireLines(f, 2); err != nil {
			return Event{}, err
		}
		return Event{Type: EventCancel, ID: id}, nil
	case EventCodePause:
		if err := requireLines(f, 2); err != nil {
			return Event{}, err
		}
		return Event{Type: EventPause, ID: id}, nil
	case EventCodeResume:
		if err := requireLines(f, 2); err != nil {
			return Event{}, err
		}
		return Event{Type: EventResume, ID: id}, nil
	default:
		return Event{}, invalidData("unrecognized event code: %d", code)
	}
}
