package parser

import (
	"errors"
	"fmt"
)

// ErrIncomplete means the input ends before a required delimiter. More bytes
// may turn it into a valid request.
var ErrIncomplete = errors.New("incomplete request")

// SyntaxError means the input can never become a valid request, no matter
// what follows it.
type SyntaxError struct {
	message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("[Syntax error]: %s", e.message)
}

func syntaxErrorf(format string, a ...any) error {
	return SyntaxError{message: fmt.Sprintf(format, a...)}
}

func incompletef(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrIncomplete, fmt.Sprintf(format, a...))
}
