package session

import (
	"net"
)

// ListenUDP opens an unconnected UDP socket on an ephemeral local port.
func ListenUDP(network string) (Transport, error) {
	conn, err := net.ListenUDP(network, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// WithListenFunc replaces the socket factory.
func WithListenFunc(listen ListenFunc) Option {
	return func(s *Session) {
		s.listen = listen
	}
}

// WithWaitIndicator shows indicator while blocked on a reply.
func WithWaitIndicator(indicator WaitIndicator) Option {
	return func(s *Session) {
		s.indicator = indicator
	}
}
