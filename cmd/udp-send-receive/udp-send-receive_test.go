package main

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flomesh-io/udp-send-receive/pkg/config"
	"github.com/flomesh-io/udp-send-receive/pkg/constants"
	"github.com/flomesh-io/udp-send-receive/pkg/echo"
)

func TestRootCmdFlags(t *testing.T) {
	assert := tassert.New(t)

	cmd := newRootCmd(config.Default())
	port := cmd.Flags().Lookup("port")
	assert.NotNil(port)
	assert.Equal("8888", port.DefValue)
	assert.Equal("p", port.Shorthand)
	assert.Equal(constants.DefaultLogLevel, cmd.Flags().Lookup("log-level").DefValue)
	assert.Equal("false", cmd.Flags().Lookup("spinner").DefValue)
}

func TestRootCmdEcho(t *testing.T) {
	assert := tassert.New(t)

	srv, err := echo.Listen("127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.Serve(ctx) }()

	out := new(bytes.Buffer)
	cmd := newRootCmd(config.Default())
	cmd.SetIn(strings.NewReader("127.0.0.1\nping\n"))
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--port", strconv.Itoa(srv.Addr().Port), "--log-level", "error"})

	assert.NoError(cmd.ExecuteContext(context.Background()))
	assert.Contains(out.String(), constants.MessagePrompt+"\nping\n")
}

func TestRootCmdRejectsBadFlags(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"port out of range", []string{"--port", "0"}},
		{"unknown log level", []string{"--log-level", "chatty"}},
		{"positional argument", []string{"10.0.0.1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := tassert.New(t)

			out := new(bytes.Buffer)
			cmd := newRootCmd(config.Default())
			cmd.SetIn(strings.NewReader("127.0.0.1\n"))
			cmd.SetOut(out)
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetArgs(tc.args)

			assert.Error(cmd.ExecuteContext(context.Background()))
			assert.NotContains(out.String(), constants.AddressPrompt)
		})
	}
}

func TestRootCmdReturnsWhenCancelledAtPrompt(t *testing.T) {
	assert := tassert.New(t)

	pr, pw := io.Pipe()
	defer pw.Close() //nolint: errcheck

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := new(bytes.Buffer)
	cmd := newRootCmd(config.Default())
	cmd.SetIn(pr)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--log-level", "error"})

	err := cmd.ExecuteContext(ctx)
	assert.True(errors.Is(err, context.Canceled))
	assert.Equal(constants.AddressPrompt+"\n", out.String())
}
