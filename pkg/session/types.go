// Package session implements the interactive send/receive loop against a single UDP peer.
package session

import (
	"bufio"
	"io"
	"net"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/flomesh-io/udp-send-receive/pkg/logger"
)

var log = logger.New("udp-session")

var (
	errSocketNotOpen   = errors.New("socket is not open")
	errNotResolved     = errors.New("remote endpoint is not resolved")
	errAlreadyResolved = errors.New("remote endpoint is already resolved")
)

// Transport is the datagram socket used by a Session. *net.UDPConn implements it.
type Transport interface {
	WriteTo(b []byte, addr net.Addr) (int, error)
	ReadFrom(b []byte) (int, net.Addr, error)
	Close() error
}

// ListenFunc opens a Transport for the given network ("udp4" or "udp6")
type ListenFunc func(network string) (Transport, error)

// WaitIndicator is shown while a reply is pending
type WaitIndicator interface {
	Start()
	Stop()
}

// Session is one interactive conversation with a single peer
type Session struct {
	id     uuid.UUID
	port   int
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
	log    zerolog.Logger

	listen    ListenFunc
	indicator WaitIndicator

	// tokens is fed by a single reader goroutine so that input reads can be
	// abandoned when the context is cancelled.
	tokens     chan token
	readerOnce sync.Once
	done       chan struct{}
	closeOnce  sync.Once

	network string
	remote  *net.UDPAddr
	conn    Transport
}

// Option customizes a Session
type Option func(*Session)

type token struct {
	text string
	err  error
}

type noopIndicator struct{}

func (noopIndicator) Start() {}
func (noopIndicator) Stop()  {}
