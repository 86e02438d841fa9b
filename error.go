package minihttp

import (
	"errors"
	"fmt"

	"github.com/tony-montemuro/minihttp/internal/parser"
)

// ErrIncomplete is wrapped by a ParseError when the request stopped before
// its head was complete.
var ErrIncomplete = parser.ErrIncomplete

// ErrRequestTooLarge is wrapped by a ParseError when the request head does
// not fit in the connection buffer.
var ErrRequestTooLarge = errors.New("request head too large")

// ParseError ends a connection without a response.
type ParseError struct {
	err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[Parse error]: %s", e.err.Error())
}

func (e *ParseError) Unwrap() error { return e.err }

// IOError covers socket and file system failures. Op names the failing step.
type IOError struct {
	Op  string
	err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("[I/O error]: %s: %s", e.Op, e.err.Error())
}

func (e *IOError) Unwrap() error { return e.err }

func ioError(op string, err error) error {
	if err == nil {
		return nil
	}

	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: op, err: err}
}
