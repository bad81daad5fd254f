// package main implements a UDP echo server that stands in for the arduino during manual testing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/flomesh-io/udp-send-receive/pkg/constants"
	"github.com/flomesh-io/udp-send-receive/pkg/echo"
	"github.com/flomesh-io/udp-send-receive/pkg/logger"
)

var (
	log      = logger.NewPretty("udp-echo-server")
	logLevel = flag.String("logLevel", "debug", "Log output level")
	port     = flag.Int("port", constants.DefaultPort, "port on which this app is serving UDP connections")
)

func main() {
	flag.Parse()
	err := logger.SetLogLevel(*logLevel)
	if err != nil {
		log.Fatal().Msgf("Unknown log level: %s", *logLevel)
	}

	listenAddr := fmt.Sprintf("%s:%d", constants.WildcardIPAddr, *port)
	srv, err := echo.Listen(listenAddr)
	if err != nil {
		log.Fatal().Err(err).Msgf("Error creating UDP listener on address %q", listenAddr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		log.Fatal().Err(err).Msg("Echo server stopped")
	}
	log.Info().Msg("Echo server shut down")
}
