package cellid

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptEncoding is returned when binary input does not decode to a
	// cell id.
	ErrCorruptEncoding = errors.New("corrupt cell id encoding")

	// ErrInvalidToken is returned when text input is not a cell id token.
	ErrInvalidToken = errors.New("invalid cell id token")
)

// ParseError reports text that could not be parsed into a cell id.
//
// The sentinel describing the failure can be matched with errors.Is.
type ParseError struct {
	Input string
	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", e.cause, e.Input)
}

func (e *ParseError) Unwrap() error { return e.cause }
