// Package ssipgo is a client library for the Speech Synthesis Interface
// Protocol (SSIP), the line-oriented text protocol spoken by the
// speech-dispatcher daemon. It offers a blocking Client façade, a
// non-blocking QueuedClient for poll-driven reactors, and a goroutine-based
// AsyncClient, all built on the wire-level encoding/decoding in the ssip
// subpackage.
package ssipgo

import (
	"log/slog"
	"os"
)

var defLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// SetDefaultLogger sets the logger new Clients pick up when none is
// supplied via WithClientLogger. Must be called before NewClient to take
// effect.
func SetDefaultLogger(l *slog.Logger) {
	defLogger = l
}

// DefaultLogger returns the package-wide default logger.
func DefaultLogger() *slog.Logger {
	return defLogger
}
