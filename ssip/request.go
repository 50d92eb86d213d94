package ssip

import (
	"fmt"
	"strconv"
	"strings"
)

// Request is a single command sent to the speech-dispatcher server. Values
// are built with the constructor functions below (SpeakRequest, SetRate,
// Stop, etc.), never assembled by hand, so callers cannot produce a Request
// whose Encode output is malformed.
type Request struct {
	kind requestKind

	scope   fmt.Stringer // MessageScope or ClientScope, depending on kind
	text    string
	lines   []string
	flag    bool
	i8      int8
	u32     uint32
	str     string
	pos     HistoryPosition
	dir     CursorDirection
	sortKey SortKey
	sortDir SortDirection
	order   []Ordering
}

type requestKind int

const (
	reqSpeak requestKind = iota
	reqSendLine
	reqSendLines
	reqCharSpeak
	reqKeySpeak
	reqStop
	reqCancel
	reqPause
	reqResume
	reqSetClientName
	reqSetPriority
	reqSetDebug
	reqSetOutputModule
	reqGetOutputModule
	reqListOutputModules
	reqSetLanguage
	reqGetLanguage
	reqSetSSMLMode
	reqSetPunctuation
	reqSetSpelling
	reqSetCapLetRecognition
	reqSetVoiceType
	reqGetVoiceType
	reqListVoiceTypes
	reqSetSynthesisVoice
	reqListSynthesisVoices
	reqSetRate
	reqGetRate
	reqSetPitch
	reqGetPitch
	reqSetVolume
	reqGetVolume
	reqSetPauseContext
	reqSetNotification
	reqBlockBegin
	reqBlockEnd
	reqSetHistory
	reqHistoryGetClients
	reqHistoryGetClientID
	reqHistoryGetClientMsgs
	reqHistoryGetLastMsgID
	reqHistoryGetMsg
	reqHistoryCursorGet
	reqHistoryCursorSet
	reqHistoryCursorMove
	reqHistorySpeak
	reqHistorySort
	reqHistorySetShortMsgLength
	reqHistorySetMsgTypeOrdering
	reqHistorySearch
	reqQuit
)

func stringerOrEmpty(s fmt.Stringer) string {
	if s == nil {
		return ""
	}
	return s.String()
}

// Encode renders the request as the exact wire bytes to write, without the
// trailing CRLF (added by the frame writer).
func (r Request) Encode() string {
	switch r.kind {
	case reqSpeak:
		return "SPEAK"
	case reqSendLine:
		return r.text
	case reqSendLines:
		var b strings.Builder
		for _, l := range r.lines {
			b.WriteString(l)
			b.WriteString("\r\n")
		}
		b.WriteString(".")
		return b.String()
	case reqCharSpeak:
		return fmt.Sprintf("CHAR %s", r.text)
	case reqKeySpeak:
		return fmt.Sprintf("KEY %s", r.text)
	case reqStop:
		return fmt.Sprintf("STOP %s", stringerOrEmpty(r.scope))
	case reqCancel:
		return fmt.Sprintf("CANCEL %s", stringerOrEmpty(r.scope))
	case reqPause:
		return fmt.Sprintf("PAUSE %s", stringerOrEmpty(r.scope))
	case reqResume:
		return fmt.Sprintf("RESUME %s", stringerOrEmpty(r.scope))
	case reqSetClientName:
		return fmt.Sprintf("SET self CLIENT_NAME %s", r.text)
	case reqSetPriority:
		return fmt.Sprintf("SET self PRIORITY %s", r.text)
	case reqSetDebug:
		return fmt.Sprintf("SET all DEBUG %s", onOff(r.flag))
	case reqSetOutputModule:
		return fmt.Sprintf("SET %s OUTPUT_MODULE %s", stringerOrEmpty(r.scope), r.text)
	case reqGetOutputModule:
		return "GET OUTPUT_MODULE"
	case reqListOutputModules:
		return "LIST OUTPUT_MODULES"
	case reqSetLanguage:
		return fmt.Sprintf("SET %s LANGUAGE %s", stringerOrEmpty(r.scope), r.text)
	case reqGetLanguage:
		return "GET LANGUAGE"
	case reqSetSSMLMode:
		return fmt.Sprintf("SET self SSML_MODE %s", onOff(r.flag))
	case reqSetPunctuation:
		return fmt.Sprintf("SET %s PUNCTUATION %s", stringerOrEmpty(r.scope), r.text)
	case reqSetSpelling:
		return fmt.Sprintf("SET %s SPELLING %s", stringerOrEmpty(r.scope), onOff(r.flag))
	case reqSetCapLetRecognition:
		return fmt.Sprintf("SET %s CAP_LET_RECOGN %s", stringerOrEmpty(r.scope), r.text)
	case reqSetVoiceType:
		return fmt.Sprintf("SET %s VOICE_TYPE %s", stringerOrEmpty(r.scope), r.text)
	case reqGetVoiceType:
		return "GET VOICE_TYPE"
	case reqListVoiceTypes:
		return "LIST VOICES"
	case reqSetSynthesisVoice:
		return fmt.Sprintf("SET %s SYNTHESIS_VOICE %s", stringerOrEmpty(r.scope), r.text)
	case reqListSynthesisVoices:
		return "LIST SYNTHESIS_VOICES"
	case reqSetRate:
		return fmt.Sprintf("SET %s RATE %d", stringerOrEmpty(r.scope), r.i8)
	case reqGetRate:
		return "GET RATE"
	case reqSetPitch:
		return fmt.Sprintf("SET %s PITCH %d", stringerOrEmpty(r.scope), r.i8)
	case reqGetPitch:
		return "GET PITCH"
	case reqSetVolume:
		return fmt.Sprintf("SET %s VOLUME %d", stringerOrEmpty(r.scope), r.i8)
	case reqGetVolume:
		return "GET VOLUME"
	case reqSetPauseContext:
		return fmt.Sprintf("SET %s PAUSE_CONTEXT %d", stringerOrEmpty(r.scope), r.u32)
	case reqSetNotification:
		return fmt.Sprintf("SET self NOTIFICATION %s %s", r.text, onOff(r.flag))
	case reqBlockBegin:
		return "BLOCK BEGIN"
	case reqBlockEnd:
		return "BLOCK END"
	case reqSetHistory:
		return fmt.Sprintf("SET %s HISTORY %s", stringerOrEmpty(r.scope), onOff(r.flag))
	case reqHistoryGetClients:
		return "HISTORY GET CLIENT_LIST"
	case reqHistoryGetClientID:
		return "HISTORY GET CLIENT_ID"
	case reqHistoryGetClientMsgs:
		return fmt.Sprintf("HISTORY GET CLIENT_MESSAGES %s %d_%d", stringerOrEmpty(r.scope), r.u32, r.pos.pos)
	case reqHistoryGetLastMsgID:
		return "HISTORY GET LAST"
	case reqHistoryGetMsg:
		return fmt.Sprintf("HISTORY GET MESSAGE %s", r.text)
	case reqHistoryCursorGet:
		return "HISTORY CURSOR GET"
	case reqHistoryCursorSet:
		return fmt.Sprintf("HISTORY CURSOR SET %s %s", stringerOrEmpty(r.scope), r.pos)
	case reqHistoryCursorMove:
		return fmt.Sprintf("HISTORY CURSOR %s", r.dir)
	case reqHistorySpeak:
		return fmt.Sprintf("HISTORY SAY %s", r.text)
	case reqHistorySort:
		return fmt.Sprintf("HISTORY SORT %s %s", r.sortDir, r.sortKey)
	case reqHistorySetShortMsgLength:
		return fmt.Sprintf("HISTORY SET SHORT_MESSAGE_LENGTH %d", r.u32)
	case reqHistorySetMsgTypeOrdering:
		parts := make([]string, len(r.order))
		for i, o := range r.order {
			parts[i] = o.String()
		}
		return fmt.Sprintf("HISTORY SET MESSAGE_TYPE_ORDERING \"%s\"", strings.Join(parts, " "))
	case reqHistorySearch:
		return fmt.Sprintf("HISTORY SEARCH %s \"%s\"", stringerOrEmpty(r.scope), r.text)
	case reqQuit:
		return "QUIT"
	default:
		return ""
	}
}

// SpeakRequest opens a multi-line SPEAK block; the caller must follow it
// with SendLine/SendLines calls and a terminating "." line (SendLines adds
// the terminator for you).
func SpeakRequest() Request { return Request{kind: reqSpeak} }

// SendLine writes one raw line of text within an already-open SPEAK block.
// It does not add a terminator; call it once more with "." to end the
// block, or use SendLines to send everything in one call.
func SendLine(text string) Request { return Request{kind: reqSendLine, text: text} }

// SendLines writes multiple lines of text within an already-open SPEAK
// block, followed by the "." terminator.
func SendLines(lines []string) Request { return Request{kind: reqSendLines, lines: lines} }

// CharSpeak requests a single character be spoken literally.
func CharSpeak(char string) Request { return Request{kind: reqCharSpeak, text: char} }

// KeySpeak requests a named key combination be announced.
func KeySpeak(key string) Request { return Request{kind: reqKeySpeak, text: key} }

// Stop halts the messages selected by scope.
func Stop(scope MessageScope) Request { return Request{kind: reqStop, scope: scope} }

// Cancel removes the messages selected by scope from the queue.
func Cancel(scope MessageScope) Request { return Request{kind: reqCancel, scope: scope} }

// Pause suspends the messages selected by scope.
func Pause(scope MessageScope) Request { return Request{kind: reqPause, scope: scope} }

// Resume continues the messages selected by scope.
func Resume(scope MessageScope) Request { return Request{kind: reqResume, scope: scope} }

// SetClientName announces the connection's identity; must be the first
// request sent after connecting.
func SetClientName(name ClientName) Request {
	return Request{kind: reqSetClientName, text: name.String()}
}

// SetPriority sets the priority queue for subsequent SPEAK requests.
func SetPriority(p Priority) Request { return Request{kind: reqSetPriority, text: p.String()} }

// SetDebug toggles server-side debug logging for all clients.
func SetDebug(enabled bool) Request { return Request{kind: reqSetDebug, flag: enabled} }

// SetOutputModule selects the output module used by scope.
func SetOutputModule(scope ClientScope, name string) Request {
	return Request{kind: reqSetOutputModule, scope: scope, text: name}
}

// GetOutputModule queries the current output module.
func GetOutputModule() Request { return Request{kind: reqGetOutputModule} }

// ListOutputModules lists the available output modules.
func ListOutputModules() Request { return Request{kind: reqListOutputModules} }

// SetLanguage sets the spoken language for scope, as an RFC 1766 tag.
func SetLanguage(scope ClientScope, lang string) Request {
	return Request{kind: reqSetLanguage, scope: scope, text: lang}
}

// GetLanguage queries the current language.
func GetLanguage() Request { return Request{kind: reqGetLanguage} }

// SetSSMLMode toggles SSML input interpretation.
func SetSSMLMode(enabled bool) Request { return Request{kind: reqSetSSMLMode, flag: enabled} }

// SetPunctuation sets how much punctuation scope's synthesizer reads aloud.
func SetPunctuation(scope ClientScope, mode PunctuationMode) Request {
	return Request{kind: reqSetPunctuation, scope: scope, text: mode.String()}
}

// SetSpelling toggles spelling mode for scope.
func SetSpelling(scope ClientScope, enabled bool) Request {
	return Request{kind: reqSetSpelling, scope: scope, flag: enabled}
}

// SetCapLetRecognition sets how capital letters are announced for scope.
func SetCapLetRecognition(scope ClientScope, mode CapitalLettersMode) Request {
	return Request{kind: reqSetCapLetRecognition, scope: scope, text: mode.String()}
}

// SetVoiceType selects a symbolic voice (e.g. "male1") for scope.
func SetVoiceType(scope ClientScope, name string) Request {
	return Request{kind: reqSetVoiceType, scope: scope, text: name}
}

// GetVoiceType queries the current symbolic voice.
func GetVoiceType() Request { return Request{kind: reqGetVoiceType} }

// ListVoiceTypes lists the available symbolic voice names.
func ListVoiceTypes() Request { return Request{kind: reqListVoiceTypes} }

// SetSynthesisVoice selects a native synthesizer voice by name for scope.
func SetSynthesisVoice(scope ClientScope, name string) Request {
	return Request{kind: reqSetSynthesisVoice, scope: scope, text: name}
}

// ListSynthesisVoices lists the synthesizer's native voices.
func ListSynthesisVoices() Request { return Request{kind: reqListSynthesisVoices} }

// SetRate sets the speech rate for scope, clamped to [-100, 100].
func SetRate(scope ClientScope, rate int8) Request {
	return Request{kind: reqSetRate, scope: scope, i8: clampRange(rate)}
}

// GetRate queries the current speech rate.
func GetRate() Request { return Request{kind: reqGetRate} }

// SetPitch sets the speech pitch for scope, clamped to [-100, 100].
func SetPitch(scope ClientScope, pitch int8) Request {
	return Request{kind: reqSetPitch, scope: scope, i8: clampRange(pitch)}
}

// GetPitch queries the current speech pitch.
func GetPitch() Request { return Request{kind: reqGetPitch} }

// SetVolume sets the output volume for scope, clamped to [-100, 100].
func SetVolume(scope ClientScope, vol int8) Request {
	return Request{kind: reqSetVolume, scope: scope, i8: clampRange(vol)}
}

// GetVolume queries the current output volume.
func GetVolume() Request { return Request{kind: reqGetVolume} }

// SetPauseContext sets how many lines of context precede a paused message
// on resume, for scope.
func SetPauseContext(scope ClientScope, lines uint32) Request {
	return Request{kind: reqSetPauseContext, scope: scope, u32: lines}
}

// SetNotification toggles delivery of one class of event notification.
func SetNotification(t NotificationType, enabled bool) Request {
	return Request{kind: reqSetNotification, text: t.String(), flag: enabled}
}

// BlockBegin starts a block of related SPEAK requests that the server may
// treat as a single unit for context purposes.
func BlockBegin() Request { return Request{kind: reqBlockBegin} }

// BlockEnd ends a block started by BlockBegin.
func BlockEnd() Request { return Request{kind: reqBlockEnd} }

// SetHistory toggles history recording for scope.
func SetHistory(scope ClientScope, enabled bool) Request {
	return Request{kind: reqSetHistory, scope: scope, flag: enabled}
}

// HistoryGetClients lists clients with message history.
func HistoryGetClients() Request { return Request{kind: reqHistoryGetClients} }

// HistoryGetClientID queries the current client's id.
func HistoryGetClientID() Request { return Request{kind: reqHistoryGetClientID} }

// HistoryGetClientMessages lists up to number messages for client starting
// at start.
func HistoryGetClientMessages(client ClientScope, start, number uint32) Request {
	return Request{kind: reqHistoryGetClientMsgs, scope: client, u32: start, pos: HistoryPosition{pos: uint16(number)}}
}

// HistoryGetLastMessageID retrieves the id of the most recent message.
func HistoryGetLastMessageID() Request { return Request{kind: reqHistoryGetLastMsgID} }

// HistoryGetMessage retrieves the text of message id.
func HistoryGetMessage(id MessageID) Request {
	return Request{kind: reqHistoryGetMsg, text: strconv.FormatUint(uint64(id), 10)}
}

// HistoryCursorGet queries the current cursor position.
func HistoryCursorGet() Request { return Request{kind: reqHistoryCursorGet} }

// HistoryCursorSet moves scope's cursor to an absolute position.
func HistoryCursorSet(scope ClientScope, pos HistoryPosition) Request {
	return Request{kind: reqHistoryCursorSet, scope: scope, pos: pos}
}

// HistoryCursorMove moves the cursor one step in dir.
func HistoryCursorMove(dir CursorDirection) Request {
	return Request{kind: reqHistoryCursorMove, dir: dir}
}

// HistorySpeak re-speaks message id from history.
func HistorySpeak(id MessageID) Request {
	return Request{kind: reqHistorySpeak, text: strconv.FormatUint(uint64(id), 10)}
}

// HistorySort sets the sort direction and key used for history listings.
func HistorySort(dir SortDirection, key SortKey) Request {
	return Request{kind: reqHistorySort, sortDir: dir, sortKey: key}
}

// HistorySetShortMessageLength sets the length messages are truncated to in
// short listings.
func HistorySetShortMessageLength(length uint32) Request {
	return Request{kind: reqHistorySetShortMsgLength, u32: length}
}

// HistorySetMessageTypeOrdering sets the relative ordering of message kinds
// within a history listing.
func HistorySetMessageTypeOrdering(order []Ordering) Request {
	return Request{kind: reqHistorySetMsgTypeOrdering, order: order}
}

// HistorySearch searches scope's message history for a substring.
func HistorySearch(scope ClientScope, needle string) Request {
	return Request{kind: reqHistorySearch, scope: scope, text: needle}
}

// QuitRequest closes the session gracefully.
func QuitRequest() Request { return Request{kind: reqQuit} }
