// Package main implements udp-send-receive, an interactive client that sends
// typed messages to a UDP peer and prints each reply.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/flomesh-io/udp-send-receive/pkg/cli"
	"github.com/flomesh-io/udp-send-receive/pkg/config"
	"github.com/flomesh-io/udp-send-receive/pkg/logger"
	"github.com/flomesh-io/udp-send-receive/pkg/session"
)

var log = logger.NewPretty("udp-send-receive")

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "udp-send-receive",
		Short: "Send strings to a device over UDP and print its replies.",
		Long: `Prompts for the device IP address, then sends every whitespace separated
word typed on stdin as one UDP datagram and prints the single reply that follows.
Replies longer than 128 bytes are truncated.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := logger.SetLogLevel(cfg.LogLevel); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var opts []session.Option
			if cfg.Spinner {
				opts = append(opts, session.WithWaitIndicator(cli.NewSpinner(cmd.ErrOrStderr(), " waiting for reply")))
			}

			s := session.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Port, opts...)
			log.Debug().Str("session", s.ID().String()).Int("port", cfg.Port).Msg("Starting session")
			return s.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&cfg.Port, "port", "p", cfg.Port, "UDP port of the remote device")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log output level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&cfg.Spinner, "spinner", cfg.Spinner, "Show a wait indicator on stderr while a reply is pending")

	return cmd
}

func main() {
	if err := newRootCmd(config.Default()).ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("udp-send-receive failed")
		os.Exit(1)
	}
}
