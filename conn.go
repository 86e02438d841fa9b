package minihttp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/tony-montemuro/minihttp/internal/parser"
)

// ConnState is a step in the life of a connection. A connection moves
// through them in order; StateFailed may replace any step after
// StateAccepted and is final. StateRead is entered once reading stops with
// bytes to classify, so a malformed request fails from StateRead while a
// failed read fails from StateAccepted.
type ConnState int

const (
	StateAccepted ConnState = iota
	StateRead
	StateParsed
	StateDispatched
	StateWritten
	StateClosed
	StateFailed
)

func (s ConnState) String() string {
	switch s {
	case StateAccepted:
		return "accepted"
	case StateRead:
		return "read"
	case StateParsed:
		return "parsed"
	case StateDispatched:
		return "dispatched"
	case StateWritten:
		return "written"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("ConnState(%d)", int(s))
	}
}

// conn serves exactly one request on one accepted connection.
type conn struct {
	id      int64
	server  *Server
	netConn net.Conn
	files   *fileRoot
	active  *activeConns
	buffer  []byte
	logger  zerolog.Logger
	state   ConnState
}

func (s *Server) newConn(id int64, netConn net.Conn, files *fileRoot) *conn {
	size := s.MaxRequestSize
	if size <= 0 {
		size = DefaultMaxRequestSize
	}

	return &conn{
		id:      id,
		server:  s,
		netConn: netConn,
		files:   files,
		buffer:  make([]byte, size),
		logger:  s.Logger.With().Int64("conn", id).Str("remote", netConn.RemoteAddr().String()).Logger(),
	}
}

func (c *conn) setState(state ConnState) {
	c.state = state
	if hook := c.server.ConnState; hook != nil {
		hook(c.netConn, state)
	}
}

func (c *conn) serve() {
	start := time.Now()
	c.setState(StateAccepted)
	defer c.close()

	head, err := c.readHead()
	if err != nil {
		c.fail(err)
		return
	}

	req := newRequest(head)
	c.setState(StateParsed)

	route := Dispatch(req)
	c.setState(StateDispatched)

	w := bufio.NewWriter(c.netConn)
	status, n, err := writeRoute(w, route, c.files)
	if err == nil {
		err = ioError("flush", w.Flush())
	} else {
		w.Flush()
	}
	if err != nil {
		c.fail(err)
		return
	}
	c.setState(StateWritten)

	c.logger.Info().
		Str("method", string(req.Method)).
		Str("path", req.Path).
		Stringer("route", route.Kind).
		Int("status", status).
		Int64("bytes", n).
		Dur("elapsed", time.Since(start)).
		Msg("request served")
}

// readHead reads until the buffered bytes hold a complete request head, the
// buffer is full, or the peer stops sending.
func (c *conn) readHead() (parser.ParsedRequest, error) {
	if timeout := c.server.ReadTimeout; timeout > 0 {
		if err := c.active.setReadDeadline(c.netConn, time.Now().Add(timeout)); err != nil {
			return parser.ParsedRequest{}, ioError("read", err)
		}
	}

	n := 0
	for {
		m, err := c.netConn.Read(c.buffer[n:])
		n += m

		head, _, perr := parser.RequestParser(c.buffer[:n]).Parse()
		if perr == nil {
			c.setState(StateRead)
			return head, nil
		}
		if !errors.Is(perr, parser.ErrIncomplete) {
			c.setState(StateRead)
			return parser.ParsedRequest{}, &ParseError{err: perr}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				c.setState(StateRead)
				return parser.ParsedRequest{}, &ParseError{err: perr}
			}
			return parser.ParsedRequest{}, ioError("read", err)
		}

		if n == len(c.buffer) {
			c.setState(StateRead)
			return parser.ParsedRequest{}, &ParseError{err: fmt.Errorf("%w (limit %d bytes)", ErrRequestTooLarge, n)}
		}
	}
}

func (c *conn) fail(err error) {
	c.setState(StateFailed)

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		c.logger.Warn().Err(err).Msg("closing connection without response")
		return
	}
	c.logger.Error().Err(err).Msg("connection failed")
}

// close shuts down the write half after a complete response so the peer sees
// EOF once everything is flushed, then releases the socket.
func (c *conn) close() {
	if c.state == StateWritten {
		if cw, ok := c.netConn.(interface{ CloseWrite() error }); ok {
			if err := cw.CloseWrite(); err != nil {
				c.logger.Debug().Err(err).Msg("could not shut down write half")
			}
		}
	}

	if err := c.netConn.Close(); err != nil {
		c.logger.Debug().Err(err).Msg("could not close connection")
	}

	if c.state != StateFailed {
		c.setState(StateClosed)
	}
}
