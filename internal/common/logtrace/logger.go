// Package logtrace provides logging and tracing utilities for the client.
// It integrates with zerolog for structured logging and tags every API call
// with its own call id.
package logtrace

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// base is what call loggers derive from when the context carries none. The
// client is silent until InitLogger is called.
var base = zerolog.Nop()

// InitLogger initializes the global logger with Unix timestamp format.
// Output goes to stderr at the given level.
func InitLogger(level zerolog.Level) {
	InitLoggerWithWriter(os.Stderr, level)
}

// InitLoggerWithWriter is InitLogger with an explicit destination.
func InitLoggerWithWriter(w io.Writer, level zerolog.Level) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	base = log.Logger
}
