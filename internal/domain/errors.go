package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies). The HTTP boundary maps these to
// status codes in exactly one place; anything outside this taxonomy is treated
// as an unexpected storage failure and never echoed to clients.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access denied")
)

// ValidationError is a recoverable input problem: a missing field, a bad
// district type, a duplicate email. The message is safe to show to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError marks a delete blocked by dependent rows (referential guard)
// or a uniqueness conflict surfaced by the store. The message names the
// blocking category and, where known, the dependent count.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Conflictf builds a ConflictError with a formatted message.
func Conflictf(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// Forbiddenf wraps ErrForbidden with a caller-facing reason.
func Forbiddenf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
