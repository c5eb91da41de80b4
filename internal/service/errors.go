package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation")           // 400
	ErrNotFound            = errors.New("not found")            // 404
	ErrUnauthorized        = errors.New("unauthorized")         // 401
	ErrConflict            = errors.New("conflict")             // 400
	ErrForbiddenTransition = errors.New("forbidden transition") // 400
)

// Error is a failure whose message is safe to show to the caller.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newErr(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Message returns the user-facing text of err, or "" when err carries none.
func Message(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Msg
	}
	return ""
}
