// Package logger provides component scoped zerolog loggers.
package logger

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const componentKey = "component"

var errUnknownLogLevel = errors.New("unknown log level")

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// New creates a JSON logger for the given component. Output goes to stderr.
func New(component string) zerolog.Logger {
	return zerolog.New(os.Stderr).
		With().
		Timestamp().
		Str(componentKey, component).
		Caller().
		Logger()
}

// NewPretty creates a human readable logger for the given component. Output goes to stderr.
func NewPretty(component string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Str(componentKey, component).
		Logger()
}

// SetLogLevel sets the global log level
func SetLogLevel(verbosity string) error {
	level, err := zerolog.ParseLevel(verbosity)
	if err != nil || level == zerolog.NoLevel {
		return errors.Wrapf(errUnknownLogLevel, "%q", verbosity)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}
