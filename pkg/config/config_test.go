package config

import (
	"testing"

	"github.com/pkg/errors"
	tassert "github.com/stretchr/testify/assert"

	"github.com/flomesh-io/udp-send-receive/pkg/constants"
)

func TestDefault(t *testing.T) {
	assert := tassert.New(t)

	cfg := Default()
	assert.Equal(constants.DefaultPort, cfg.Port)
	assert.Equal(8888, cfg.Port)
	assert.Equal("info", cfg.LogLevel)
	assert.False(cfg.Spinner)
	assert.NoError(cfg.Validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         Config
		expectedErr error
	}{
		{
			name: "valid",
			cfg:  Config{Port: 9000, LogLevel: "debug"},
		},
		{
			name:        "port zero",
			cfg:         Config{Port: 0, LogLevel: "info"},
			expectedErr: errInvalidPort,
		},
		{
			name:        "port too large",
			cfg:         Config{Port: 70000, LogLevel: "info"},
			expectedErr: errInvalidPort,
		},
		{
			name:        "empty log level",
			cfg:         Config{Port: 8888},
			expectedErr: errInvalidLogLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := tassert.New(t)

			err := tc.cfg.Validate()
			if tc.expectedErr == nil {
				assert.NoError(err)
				return
			}
			assert.Equal(tc.expectedErr, errors.Cause(err))
		})
	}
}
