package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tony-montemuro/minihttp"
)

func newLogger(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, err
	}

	var logger zerolog.Logger
	if format == "json" {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	return logger.Level(lvl).With().Timestamp().Logger(), nil
}

func main() {
	srv := minihttp.Server{}

	flag.StringVar(&srv.Addr, "addr", minihttp.DefaultAddr, "address to listen on")
	flag.StringVar(&srv.Directory, "directory", ".", "directory to serve /files/ from")
	flag.Int64Var(&srv.MaxConns, "max-conns", minihttp.DefaultMaxConns, "maximum number of connections served at once")
	flag.IntVar(&srv.MaxRequestSize, "max-request-size", minihttp.DefaultMaxRequestSize, "maximum size of a request head in bytes")
	flag.DurationVar(&srv.ReadTimeout, "read-timeout", 0, "time allowed to read a request head (0 waits forever)")
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	logFormat := flag.String("log-format", "console", "log format (console or json)")
	flag.Parse()

	logger, err := newLogger(*logLevel, *logFormat)
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("invalid log level")
	}
	srv.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
