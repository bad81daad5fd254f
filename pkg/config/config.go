// Package config holds the command line configuration of udp-send-receive.
package config

import (
	"github.com/pkg/errors"

	"github.com/flomesh-io/udp-send-receive/pkg/constants"
)

var (
	errInvalidPort     = errors.New("port must be within 1-65535")
	errInvalidLogLevel = errors.New("log level must not be empty")
)

// Config is populated from command line flags
type Config struct {
	// Port is the remote UDP port
	Port int
	// LogLevel is the zerolog level for diagnostics written to stderr
	LogLevel string
	// Spinner shows a wait indicator on stderr while a reply is pending
	Spinner bool
}

// Default returns the configuration used when no flags are given.
func Default() *Config {
	return &Config{
		Port:     constants.DefaultPort,
		LogLevel: constants.DefaultLogLevel,
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.Wrapf(errInvalidPort, "got %d", c.Port)
	}
	if c.LogLevel == "" {
		return errInvalidLogLevel
	}
	return nil
}
