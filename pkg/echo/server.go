// Package echo implements a UDP echo server that answers every datagram with its own payload.
package echo

import (
	"context"
	"net"

	"github.com/pkg/errors"

	"github.com/flomesh-io/udp-send-receive/pkg/constants"
	"github.com/flomesh-io/udp-send-receive/pkg/logger"
)

var log = logger.New("udp-echo-server")

// Server echoes datagrams back to their sender
type Server struct {
	conn *net.UDPConn
}

// Listen binds a UDP socket on addr, for example ":8888" or "127.0.0.1:0".
func Listen(addr string) (*Server, error) {
	listenAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving listen address %q", addr)
	}

	conn, err := net.ListenUDP("udp", listenAddr)
	if err != nil {
		return nil, errors.Wrapf(err, "creating UDP listener on address %q", addr)
	}
	log.Info().Msgf("Server listening on address %q", conn.LocalAddr())

	return &Server{conn: conn}, nil
}

// Addr returns the bound local address.
func (s *Server) Addr() *net.UDPAddr {
	return s.conn.LocalAddr().(*net.UDPAddr)
}

// Serve echoes datagrams until ctx is done or the socket is closed.
func (s *Server) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.conn.Close()
	})
	defer stop()

	b := make([]byte, constants.EchoBufferSize)
	for {
		cc, remote, err := s.conn.ReadFromUDP(b)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return errors.Wrap(err, "reading from socket")
		}
		log.Debug().Str("remote", remote.String()).Int("bytes", cc).Msgf("Read %q", b[:cc])

		if _, err := s.conn.WriteToUDP(b[:cc], remote); err != nil {
			log.Error().Err(err).Str("remote", remote.String()).Msg("Error echoing datagram")
		}
	}
}

// Close releases the socket.
func (s *Server) Close() error {
	return s.conn.Close()
}
