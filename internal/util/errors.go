// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
)

// Common application-specific errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// IsError checks whether err matches the target sentinel error.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}

// validationError carries a user-facing message while still matching
// ErrInvalidInput under errors.Is, so handlers can both classify the error
// and surface the message verbatim.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrInvalidInput }

// Validationf builds a validation error with a formatted user-facing message.
func Validationf(format string, args ...any) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}
