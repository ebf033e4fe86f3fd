// Package logging builds the zerolog loggers used by every service.
//
// Services take a zerolog.Logger by value and derive component loggers with
// Component, so every line carries the emitting subsystem:
//
//	log := logging.New(os.Stderr, zerolog.InfoLevel)
//	client := translate.NewClient(translate.WithLogger(logging.Component(log, "translate")))
//
// Tests use Nop.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLevel names the environment variable that overrides the log level
const EnvLevel = "TRANSLATOR_LOG_LEVEL"

// New creates a console logger with timestamps writing to w
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// NewDefault creates the application logger on stderr.
// The level is read from TRANSLATOR_LOG_LEVEL and defaults to info.
func NewDefault() zerolog.Logger {
	return New(os.Stderr, ParseLevel(os.Getenv(EnvLevel)))
}

// ParseLevel converts a level name to a zerolog level, defaulting to info
func ParseLevel(name string) zerolog.Level {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Component returns a child logger tagged with the component name
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// Nop returns a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
