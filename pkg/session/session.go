package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/flomesh-io/udp-send-receive/pkg/constants"
	"github.com/flomesh-io/udp-send-receive/pkg/validator"
)

// NewSession creates a Session reading user input from in, printing prompts
// and replies to out and address diagnostics to errOut.
func NewSession(in io.Reader, out, errOut io.Writer, port int, opts ...Option) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	id := uuid.New()
	s := &Session{
		id:        id,
		port:      port,
		in:        scanner,
		out:       out,
		errOut:    errOut,
		log:       log.With().Str("session", id.String()).Logger(),
		listen:    ListenUDP,
		indicator: noopIndicator{},
		tokens:    make(chan token),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the identifier attached to this session's log lines.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Remote returns the resolved peer endpoint, nil before Resolve.
func (s *Session) Remote() *net.UDPAddr {
	return s.remote
}

// scan feeds s.tokens until input ends or the session is closed.
func (s *Session) scan() {
	for s.in.Scan() {
		select {
		case s.tokens <- token{text: s.in.Text()}:
		case <-s.done:
			return
		}
	}

	err := s.in.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case s.tokens <- token{err: err}:
	case <-s.done:
	}
}

// readToken returns the next whitespace delimited token, io.EOF when input
// ends and ctx.Err() when ctx is done first.
func (s *Session) readToken(ctx context.Context) (string, error) {
	s.readerOnce.Do(func() {
		go s.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-s.done:
		return "", io.EOF
	case t := <-s.tokens:
		return t.text, t.err
	}
}

// PromptAddress asks for the peer address until a valid one is entered.
func (s *Session) PromptAddress(ctx context.Context) (string, error) {
	for {
		_, _ = fmt.Fprintln(s.out, constants.AddressPrompt)
		ip, err := s.readToken(ctx)
		if err != nil {
			return "", err
		}
		_, _ = fmt.Fprintln(s.out)

		if validator.ValidateIP(ip, s.errOut) {
			return ip, nil
		}
		s.log.Debug().Str("input", ip).Msg("Rejected peer address")
	}
}

// Resolve turns ip and the session port into the remote endpoint. The
// endpoint cannot change once resolved.
func (s *Session) Resolve(ip string) (*net.UDPAddr, error) {
	if s.remote != nil {
		return nil, errAlreadyResolved
	}

	addr, err := validator.ParseIP(ip)
	if err != nil {
		return nil, err
	}
	network := "udp6"
	if addr.Unmap().Is4() {
		network = "udp4"
	}

	hostport := net.JoinHostPort(ip, strconv.Itoa(s.port))
	remote, err := net.ResolveUDPAddr(network, hostport)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", hostport)
	}

	s.network = network
	s.remote = remote
	s.log.Info().Str("remote", remote.String()).Msg("Resolved peer endpoint")
	return remote, nil
}

// Open creates the socket used for every exchange of this session.
func (s *Session) Open() error {
	if s.remote == nil {
		return errNotResolved
	}
	if s.conn != nil {
		return nil
	}

	conn, err := s.listen(s.network)
	if err != nil {
		return errors.Wrapf(err, "opening %s socket", s.network)
	}
	s.conn = conn
	return nil
}

// Close stops reading input and releases the socket.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Run sends each message typed by the user as one datagram and prints the
// single reply that follows, truncated to constants.ReceiveBufferSize bytes.
// It returns nil when input ends, ctx.Err() when ctx is cancelled while
// waiting for input or a reply, and the first socket error otherwise.
func (s *Session) Run(ctx context.Context) error {
	if s.conn == nil {
		return errSocketNotOpen
	}

	// Closing the socket is the only way to unblock a pending receive.
	stop := context.AfterFunc(ctx, func() {
		_ = s.conn.Close()
	})
	defer stop()

	buf := make([]byte, constants.ReceiveBufferSize)
	for {
		_, _ = fmt.Fprintln(s.out, constants.MessagePrompt)
		msg, err := s.readToken(ctx)
		if errors.Is(err, io.EOF) {
			s.log.Debug().Msg("Input closed")
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.Wrap(err, "reading message")
		}

		if _, err := s.conn.WriteTo([]byte(msg), s.remote); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.Wrapf(err, "sending to %s", s.remote)
		}
		s.log.Debug().Str("remote", s.remote.String()).Int("bytes", len(msg)).Msg("Sent datagram")

		s.indicator.Start()
		n, sender, err := s.conn.ReadFrom(buf)
		s.indicator.Stop()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.Wrapf(err, "receiving from %s", s.remote)
		}
		if sender != nil {
			s.log.Debug().Str("sender", sender.String()).Int("bytes", n).Msg("Received datagram")
		}

		_, _ = s.out.Write(buf[:n])
		_, _ = fmt.Fprintln(s.out)
	}
}

// Start runs the whole conversation: prompt for the address, resolve it,
// open the socket and loop until input ends or an error occurs.
func (s *Session) Start(ctx context.Context) error {
	defer s.Close() //nolint: errcheck

	ip, err := s.PromptAddress(ctx)
	if errors.Is(err, io.EOF) {
		s.log.Info().Msg("Input closed before a peer address was entered")
		return nil
	}
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrap(err, "reading peer address")
	}

	if _, err := s.Resolve(ip); err != nil {
		return err
	}
	if err := s.Open(); err != nil {
		return err
	}

	return s.Run(ctx)
}
