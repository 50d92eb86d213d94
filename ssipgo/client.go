package ssipgo

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"

	"github.com/ssipgo/ssipgo/ssip"
	"github.com/ssipgo/ssipgo/transport"
)

// Client is a blocking SSIP client: every Send/Receive call blocks the
// calling goroutine until the underlying connection completes the I/O.
type Client struct {
	conn transport.Conn
	r    *bufio.Reader
	w    *bufio.Writer
	log  *slog.Logger

	metrics *Metrics
}

// ClientOption configures a Client at construction time.
type ClientOption func(c *Client) error

// WithClientLogger overrides the client's logger.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) error {
		c.log = logger
		return nil
	}
}

// WithClientMetrics attaches a Metrics collector the client records
// request/response/queue activity against.
func WithClientMetrics(m *Metrics) ClientOption {
	return func(c *Client) error {
		c.metrics = m
		return nil
	}
}

// NewClient wraps an already-dialed connection in a blocking Client.
func NewClient(conn transport.Conn, options ...ClientOption) (*Client, error) {
	c := &Client{
		conn: conn,
		r:    bufio.NewReader(conn),
		w:    bufio.NewWriter(conn),
		log:  DefaultLogger().With("component", "Client"),
	}
	for _, o := range options {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Send encodes and writes req, returning c itself so callers can chain a
// typed receive call: `if _, err := c.Send(req); err != nil { ... }`.
func (c *Client) Send(req ssip.Request) (*Client, error) {
	c.log.Debug("sending request", "request", req.Encode())
	if c.metrics != nil {
		c.metrics.ObserveRequest()
	}
	if err := ssip.WriteRequest(c.w, req); err != nil {
		return c, err
	}
	return c, nil
}

// Receive reads one complete reply frame.
func (c *Client) Receive() (ssip.Frame, error) {
	f, err := ssip.ReadFrame(c.r)
	if err != nil {
		return ssip.Frame{}, err
	}
	if c.metrics != nil {
		c.metrics.ObserveResponse(f.Status.Code)
	}
	return f, nil
}

// CheckStatus reads one reply frame and validates its status code is want.
func (c *Client) CheckStatus(want ssip.ReturnCode) error {
	f, err := c.Receive()
	if err != nil {
		return err
	}
	return ssip.CheckStatus(f, want)
}

// ReceiveMessageID reads a reply frame expected to carry a queued message
// id (CodeMessageQueued or CodeHistoryLastMsg).
func (c *Client) ReceiveMessageID() (ssip.MessageID, error) {
	f, err := c.Receive()
	if err != nil {
		return 0, err
	}
	if f.Status.Code.IsFailure() {
		return 0, &ssip.SsipError{Status: f.Status}
	}
	if f.Status.Code != ssip.CodeMessageQueued && f.Status.Code != ssip.CodeHistoryLastMsg {
		return 0, &ssip.InvalidDataError{Msg: fmt.Sprintf("not a message id: status code %d", f.Status.Code)}
	}
	return ssip.DecodeMessageID(f)
}

// ReceiveClientID reads a reply frame expected to carry a client id.
func (c *Client) ReceiveClientID() (ssip.ClientID, error) {
	f, err := c.Receive()
	if err != nil {
		return 0, err
	}
	if err := ssip.CheckStatus(f, ssip.CodeHistoryClientIDSent); err != nil {
		return 0, err
	}
	return ssip.DecodeClientID(f)
}

// ReceiveSynthesisVoices reads a reply frame listing synthesis voices.
func (c *Client) ReceiveSynthesisVoices() ([]ssip.SynthesisVoice, error) {
	f, err := c.Receive()
	if err != nil {
		return nil, err
	}
	if err := ssip.CheckStatus(f, ssip.CodeVoicesListSent); err != nil {
		return nil, err
	}
	return ssip.DecodeSynthesisVoices(f)
}

// ReceiveHistoryClients reads a reply frame listing history clients.
func (c *Client) ReceiveHistoryClients() ([]ssip.HistoryClientStatus, error) {
	f, err := c.Receive()
	if err != nil {
		return nil, err
	}
	if err := ssip.CheckStatus(f, ssip.CodeHistoryClientsSent); err != nil {
		return nil, err
	}
	return ssip.DecodeHistoryClients(f)
}

// ReceiveLines reads a reply frame and returns its raw data lines, for
// responses whose status code is only known to the caller (e.g.
// LIST OUTPUT_MODULES vs HISTORY GET CLIENT_MESSAGES).
func (c *Client) ReceiveLines(want ssip.ReturnCode) ([]string, error) {
	f, err := c.Receive()
	if err != nil {
		return nil, err
	}
	if err := ssip.CheckStatus(f, want); err != nil {
		return nil, err
	}
	return ssip.DecodeLines(f)
}

// ReceiveString reads a reply frame expected to carry exactly one data
// line with status code want.
func (c *Client) ReceiveString(want ssip.ReturnCode) (string, error) {
	f, err := c.Receive()
	if err != nil {
		return "", err
	}
	if err := ssip.CheckStatus(f, want); err != nil {
		return "", err
	}
	return ssip.DecodeString(f)
}

// ReceiveU8 reads a GET reply frame (code 251) carrying an unsigned value.
func (c *Client) ReceiveU8() (uint8, error) {
	f, err := c.Receive()
	if err != nil {
		return 0, err
	}
	if err := ssip.CheckStatus(f, ssip.CodeGet); err != nil {
		return 0, err
	}
	return ssip.DecodeU8(f)
}

// ReceiveI8 reads a GET reply frame (code 251) carrying a signed value in
// [-100, 100].
func (c *Client) ReceiveI8() (int8, error) {
	f, err := c.Receive()
	if err != nil {
		return 0, err
	}
	if err := ssip.CheckStatus(f, ssip.CodeGet); err != nil {
		return 0, err
	}
	return ssip.DecodeI8(f)
}

// ReceiveCursorPos reads a HISTORY CURSOR GET reply frame.
func (c *Client) ReceiveCursorPos() (uint16, error) {
	f, err := c.Receive()
	if err != nil {
		return 0, err
	}
	if err := ssip.CheckStatus(f, ssip.CodeHistoryCurPosRet); err != nil {
		return 0, err
	}
	return ssip.DecodeCursorPos(f)
}

// ReceiveEvent reads a single asynchronous notification frame (700-705).
func (c *Client) ReceiveEvent() (ssip.Event, error) {
	f, err := c.Receive()
	if err != nil {
		return ssip.Event{}, err
	}
	return ssip.DecodeEvent(f)
}

// --- Fluent convenience wrappers -------------------------------------------
//
// Each of these sends the matching ssip.Request and consumes exactly the
// reply frame(s) that request produces, surfacing a typed result. They are
// sugar over Send/Receive*; everything here is also reachable through them.

// SetClientName announces the connection's identity. Must be the first
// call made after connecting.
func (c *Client) SetClientName(name ssip.ClientName) error {
	if _, err := c.Send(ssip.SetClientName(name)); err != nil {
		return err
	}
	return c.CheckStatus(ssip.CodeClientNameSet)
}

// Speak sends text as a single-message SPEAK block and returns the queued
// message id.
func (c *Client) Speak(ctx context.Context, text string) (ssip.MessageID, error) {
	if _, err := c.Send(ssip.SpeakRequest()); err != nil {
		return 0, err
	}
	if err := c.CheckStatus(ssip.CodeReceivingData); err != nil {
		return 0, err
	}
	if _, err := c.Send(ssip.SendLines(splitLines(text))); err != nil {
		return 0, err
	}
	return c.ReceiveMessageID()
}

// splitLines splits text on newlines for a SPEAK data block; a single-line
// message is the common case and produces a one-element slice.
func splitLines(text string) []string {
	lines := []string{}
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	lines = append(lines, text[start:])
	return lines
}

// Stop halts the messages selected by scope.
func (c *Client) Stop(scope ssip.MessageScope) error {
	if _, err := c.Send(ssip.Stop(scope)); err != nil {
		return err
	}
	return c.CheckStatus(ssip.CodeStopped)
}

// Cancel removes the messages selected by scope from the queue.
func (c *Client) Cancel(scope ssip.MessageScope) error {
	if _, err := c.Send(ssip.Cancel(scope)); err != nil {
		return err
	}
	return c.CheckStatus(ssip.CodeCanceled)
}

// Pause suspends the messages selected by scope.
func (c *Client) Pause(scope ssip.MessageScope) error {
	if _, err := c.Send(ssip.Pause(scope)); err != nil {
		return err
	}
	return c.CheckStatus(ssip.CodePaused)
}

// Resume continues the messages selected by scope.
func (c *Client) Resume(scope ssip.MessageScope) error {
	if _, err := c.Send(ssip.Resume(scope)); err != nil {
		return err
	}
	return c.CheckStatus(ssip.CodeResumed)
}

// SetRate sets the speech rate for scope.
func (c *Client) SetRate(scope ssip.ClientScope, rate int8) error {
	if _, err := c.Send(ssip.SetRate(scope, rate)); err != nil {
		return err
	}
	return c.CheckStatus(ssip.CodeRateSet)
}

// GetRate queries the current speech rate.
func (c *Client) GetRate() (int8, error) {
	if _, err := c.Send(ssip.GetRate()); err != nil {
		return 0, err
	}
	return c.ReceiveI8()
}

// SetPitch sets the speech pitch for scope.
func (c *Client) SetPitch(scope ssip.ClientScope, pitch int8) error {
	if _, err := c.Send(ssip.SetPitch(scope, pitch)); err != nil {
		return err
	}
	return c.CheckStatus(ssip.CodePitchSet)
}

// GetPitch queries the current speech pitch.
func (c *Client) GetPitch() (int8, error) {
	if _, err := c.Send(ssip.GetPitch()); err != nil {
		return 0, err
	}
	return c.ReceiveI8()
}

// SetVolume sets the output volume for scope.
func (c *Client) SetVolume(scope ssip.ClientScope, vol int8) error {
	if _, err := c.Send(ssip.SetVolume(scope, vol)); err != nil {
		return err
	}
	return c.CheckStatus(ssip.CodeVolumeSet)
}

// GetVolume queries the current output volume.
func (c *Client) GetVolume() (int8, error) {
	if _, err := c.Send(ssip.GetVolume()); err != nil {
		return 0, err
	}
	return c.ReceiveI8()
}

// SetVoiceType selects a symbolic voice for scope.
func (c *Client) SetVoiceType(scope ssip.ClientScope, name string) error {
	if _, err := c.Send(ssip.SetVoiceType(scope, name)); err != nil {
		return err
	}
	return c.CheckStatus(ssip.CodeVoiceSet)
}

// ListSynthesisVoices lists the synthesizer's native voices.
func (c *Client) ListSynthesisVoices() ([]ssip.SynthesisVoice, error) {
	if _, err := c.Send(ssip.ListSynthesisVoices()); err != nil {
		return nil, err
	}
	return c.ReceiveSynthesisVoices()
}

// SetLanguage sets the spoken language for scope.
func (c *Client) SetLanguage(scope ssip.ClientScope, lang string) error {
	if _, err := c.Send(ssip.SetLanguage(scope, lang)); err != nil {
		return err
	}
	return c.CheckStatus(ssip.CodeLanguageSet)
}

// SetPriority sets the priority queue for subsequent Speak calls.
func (c *Client) SetPriority(p ssip.Priority) error {
	if _, err := c.Send(ssip.SetPriority(p)); err != nil {
		return err
	}
	return c.CheckStatus(ssip.CodePrioritySet)
}

// SetNotification toggles delivery of one class of event notification.
func (c *Client) SetNotification(t ssip.NotificationType, enabled bool) error {
	if _, err := c.Send(ssip.SetNotification(t, enabled)); err != nil {
		return err
	}
	return c.checkStatus220(false)
}

// checkStatus220 reads a reply frame and validates it against one of the
// two meanings of status code 220, disambiguated by message text:
// cursorSetFirst expects "OK CURSOR SET FIRST" (CodeHistoryCurSetFirst),
// otherwise any other 220 message (CodeNotificationSet) is expected.
func (c *Client) checkStatus220(cursorSetFirst bool) error {
	f, err := c.Receive()
	if err != nil {
		return err
	}
	if f.Status.Code.IsFailure() {
		return &ssip.SsipError{Status: f.Status}
	}
	if f.Status.Code != 220 || (f.Status.Message == "OK CURSOR SET FIRST") != cursorSetFirst {
		return &ssip.UnexpectedStatusError{Code: f.Status.Code}
	}
	return nil
}

// HistoryGetClients lists clients with message history.
func (c *Client) HistoryGetClients() ([]ssip.HistoryClientStatus, error) {
	if _, err := c.Send(ssip.HistoryGetClients()); err != nil {
		return nil, err
	}
	return c.ReceiveHistoryClients()
}

// HistoryGetClientID queries the current client's id.
func (c *Client) HistoryGetClientID() (ssip.ClientID, error) {
	if _, err := c.Send(ssip.HistoryGetClientID()); err != nil {
		return 0, err
	}
	return c.ReceiveClientID()
}

// HistoryCursorSet moves scope's cursor to an absolute position.
func (c *Client) HistoryCursorSet(scope ssip.ClientScope, pos ssip.HistoryPosition) error {
	if _, err := c.Send(ssip.HistoryCursorSet(scope, pos)); err != nil {
		return err
	}
	switch pos {
	case ssip.HistoryFirst():
		return c.checkStatus220(true)
	case ssip.HistoryLast():
		return c.CheckStatus(ssip.CodeHistoryCurSetLast)
	default:
		return c.CheckStatus(ssip.CodeHistoryCurSetPos)
	}
}

// HistoryCursorMove moves the cursor one step in dir.
func (c *Client) HistoryCursorMove(dir ssip.CursorDirection) error {
	if _, err := c.Send(ssip.HistoryCursorMove(dir)); err != nil {
		return err
	}
	if dir == ssip.CursorForward {
		return c.CheckStatus(ssip.CodeHistoryCurMoveFor)
	}
	return c.CheckStatus(ssip.CodeHistoryCurMoveBack)
}

// HistoryGetCursorPosition queries the current cursor position.
func (c *Client) HistoryGetCursorPosition() (uint16, error) {
	if _, err := c.Send(ssip.HistoryCursorGet()); err != nil {
		return 0, err
	}
	return c.ReceiveCursorPos()
}

// Quit closes the session gracefully, waiting for the server's goodbye.
func (c *Client) Quit() error {
	if _, err := c.Send(ssip.QuitRequest()); err != nil {
		return err
	}
	return c.CheckStatus(ssip.CodeBye)
}
