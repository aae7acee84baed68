// Package apperr defines the error type shared by locktfin packages
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error whose Message may contain fmt verbs that are
// filled in with Fmt. Two errors match under errors.Is when their Message
// templates are equal, so a formatted copy still matches its sentinel.
type Error struct {
	Cause   error
	Message string
	Context []any
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Context) > 0 {
		msg = fmt.Sprintf(e.Message, e.Context...)
	}

	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	return msg
}

// Fmt returns a copy of the error with its message verbs bound to vals.
func (e *Error) Fmt(vals ...any) *Error {
	clone := *e
	clone.Context = vals

	return &clone
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	clone := *e
	clone.Cause = err

	return &clone
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Message == e.Message
}
