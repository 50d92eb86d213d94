package ssip

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defLogger zerolog.Logger = log.Logger

// SetDefaultLogger replaces the package-wide default logger returned by
// DefaultLogger. Code in this package does not log through it itself.
func SetDefaultLogger(l zerolog.Logger) {
	defLogger = l
}

// DefaultLogger returns the package-wide default logger.
func DefaultLogger() zerolog.Logger {
	return defLogger
}
