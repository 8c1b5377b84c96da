package parser

import (
	"github.com/pkg/errors"
)

// Causes of a parse error, use errors.Is to tell them apart.
var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrMissingClose    = errors.New("missing )")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// Error is returned when a sequence of tokens does not form a valid
// expression.
type Error struct {
	Reason string

	err error
}

func newError(err error, reason string) *Error {
	return &Error{Reason: reason, err: err}
}

func (e *Error) Error() string {
	return "parse error: " + e.Reason
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.err
}
