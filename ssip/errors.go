package ssip

import (
	"errors"
	"fmt"
)

// ErrNotReady is returned when a non-blocking write or read would have
// blocked. It is transient: the caller is expected to retry once the
// driver's reactor reports readiness again.
var ErrNotReady = errors.New("ssip: not ready")

// ErrTooFewLines is returned by a typed payload parser when the response
// carried fewer continuation lines than the decoder expected.
var ErrTooFewLines = errors.New("ssip: too few lines")

// ErrTooManyLines is returned by a typed payload parser when the response
// carried more continuation lines than the decoder expected.
var ErrTooManyLines = errors.New("ssip: too many lines")

// StatusLine is the terminal line of a server response: a 3-digit code and
// its message, kept verbatim including any leading "OK "/"ERR ".
type StatusLine struct {
	Code    ReturnCode
	Message string
}

func (s StatusLine) String() string {
	return fmt.Sprintf("%d %s", s.Code, s.Message)
}

// SsipError wraps a server status line in the 3xx-5xx range. The connection
// remains usable after this error; it reports a rejected command, not a
// broken transport.
type SsipError struct {
	Status StatusLine
}

func (e *SsipError) Error() string {
	return fmt.Sprintf("ssip: server error: %s", e.Status)
}

// UnexpectedStatusError is returned by a typed-receive helper that expected
// one specific success code and received a different one.
type UnexpectedStatusError struct {
	Code ReturnCode
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("ssip: unexpected status code: %d", e.Code)
}

// InvalidDataError reports a payload that could not be parsed: a
// non-numeric value where a number was expected, a malformed synthesis
// voice line, or an unrecognized event code.
type InvalidDataError struct {
	Msg string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("ssip: invalid data: %s", e.Msg)
}

// UnexpectedEOFError reports a payload truncated mid-record (e.g. a history
// client line missing its name or status field).
type UnexpectedEOFError struct {
	Msg string
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("ssip: unexpected eof: %s", e.Msg)
}

// ProtocolError reports a malformed frame: a line shorter than four
// characters, a non-numeric code, or a fourth character other than '-' or
// ' '. Continuation lines are always collected; a reply carrying data lines
// the caller did not expect is not reported as a ProtocolError. It is fatal
// to the connection, like an I/O error.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("ssip: protocol error: %s", e.Msg)
}

func invalidData(format string, args ...any) error {
	return &InvalidDataError{Msg: fmt.Sprintf(format, args...)}
}

func unexpectedEOF(format string, args ...any) error {
	return &UnexpectedEOFError{Msg: fmt.Sprintf(format, args...)}
}

func protocolError(format string, args ...any) error {
	return &ProtocolError{Msg: fmt.Sprintf(format, args...)}
}
