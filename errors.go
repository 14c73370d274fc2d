package geocell

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCell is returned when text does not name a valid cell.
	ErrInvalidCell = errors.New("invalid cell")

	// ErrNotRepresentable is returned when a cell is too deep for the
	// requested form.
	ErrNotRepresentable = errors.New("cell not representable")

	// ErrUnknownFormat is returned for an unsupported text form name.
	ErrUnknownFormat = errors.New("unknown format")
)

// ParseError reports text that could not be parsed in the given form.
//
// The original underlying error can be accessed via errors.Unwrap.
type ParseError struct {
	Input  string
	Format Format
	cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Format, e.Input, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

// FormatError reports a cell that cannot be written in the given form.
//
// The original underlying error can be accessed via errors.Unwrap.
type FormatError struct {
	Token  string
	Format Format
	cause  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format %s as %s: %v", e.Token, e.Format, e.cause)
}

func (e *FormatError) Unwrap() error { return e.cause }
