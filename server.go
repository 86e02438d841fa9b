package minihttp

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

const (
	DefaultAddr           = "127.0.0.1:4221"
	DefaultMaxConns       = 1024
	DefaultMaxRequestSize = 1024
)

// Server accepts connections and serves one request on each. Its fields must
// not change once Serve has been called.
type Server struct {
	// Addr is the TCP address to listen on. Defaults to DefaultAddr.
	Addr string
	// Directory is the base directory for /files/. Defaults to ".".
	Directory string
	// MaxConns bounds the number of connections served at once. Connections
	// accepted beyond it are closed immediately.
	MaxConns int64
	// MaxRequestSize is the capacity of each connection's read buffer.
	MaxRequestSize int
	// ReadTimeout bounds the time spent reading a request head. Zero means
	// no deadline.
	ReadTimeout time.Duration

	Logger zerolog.Logger

	// ConnState, if set, is called on each connection state change. It is
	// called from the connection's goroutine.
	ConnState func(net.Conn, ConnState)
}

// ListenAndServe listens on s.Addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return ioError("listen", err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then waits for the
// connections in flight and returns nil. Any other accept failure is
// returned. Serve always closes ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	files, err := openFileRoot(s.Directory)
	if err != nil {
		ln.Close()
		return err
	}
	defer files.close()

	maxConns := s.MaxConns
	if maxConns <= 0 {
		maxConns = DefaultMaxConns
	}
	sem := semaphore.NewWeighted(maxConns)

	var (
		wg     sync.WaitGroup
		active activeConns
	)
	defer wg.Wait()

	stop := context.AfterFunc(ctx, func() {
		ln.Close()
		active.interrupt()
	})
	defer stop()

	s.Logger.Info().
		Str("addr", ln.Addr().String()).
		Str("directory", files.name()).
		Int64("max_conns", maxConns).
		Msg("listening for connections")

	connID := int64(0)
	for {
		netConn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.Logger.Info().Msg("server shutting down")
				return nil
			}
			ln.Close()
			active.interrupt()
			return ioError("accept", err)
		}

		if !sem.TryAcquire(1) {
			s.Logger.Warn().Str("remote", netConn.RemoteAddr().String()).Msg("too many connections")
			netConn.Close()
			continue
		}

		c := s.newConn(connID, netConn, files)
		c.active = &active
		connID++

		active.add(netConn)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			defer active.remove(netConn)
			c.serve()
		}()
	}
}

// activeConns tracks live connections so that shutdown can interrupt reads
// that would otherwise block forever.
type activeConns struct {
	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	stopping bool
}

func (a *activeConns) add(c net.Conn) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.conns == nil {
		a.conns = make(map[net.Conn]struct{})
	}
	a.conns[c] = struct{}{}
	if a.stopping {
		c.SetReadDeadline(time.Now())
	}
}

func (a *activeConns) remove(c net.Conn) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.conns, c)
}

// setReadDeadline sets a read deadline on c unless shutdown has already
// interrupted it. A nil a sets the deadline directly.
func (a *activeConns) setReadDeadline(c net.Conn, t time.Time) error {
	if a == nil {
		return c.SetReadDeadline(t)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopping {
		return nil
	}
	return c.SetReadDeadline(t)
}

func (a *activeConns) interrupt() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopping = true
	for c := range a.conns {
		c.SetReadDeadline(time.Now())
	}
}
