package models

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is wrapped by every error caused by bad model data.
	ErrMalformed = errors.New("malformed model")

	// ErrUnsupported is returned for file types no loader handles.
	ErrUnsupported = errors.New("unsupported model format")
)

// ParseError reports a malformed record and the 1-based line it was on.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Unwrap lets errors.Is match ErrMalformed.
func (e *ParseError) Unwrap() error {
	return ErrMalformed
}

func parseErrorf(line int, format string, args ...any) error {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
