// Package apperr defines the error taxonomy shared by the service layer and
// the HTTP boundary. Services return errors built with the constructors
// below; handlers match the kind with errors.Is and pick a status code.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing or malformed required input.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a unique-constraint violation, e.g. duplicate email.
	ErrConflict = errors.New("conflict")
)

// Error carries a client-facing message tagged with one of the sentinel
// kinds. Error() returns only the message so it can go on the wire as-is.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// Validationf builds an ErrValidation-kinded error.
func Validationf(format string, args ...any) error {
	return &Error{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds an ErrNotFound-kinded error.
func NotFoundf(format string, args ...any) error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Conflictf builds an ErrConflict-kinded error.
func Conflictf(format string, args ...any) error {
	return &Error{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}
