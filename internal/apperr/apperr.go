// Package apperr defines the error classes surfaced to API callers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers ids that do not resolve, or resolve to rows the
	// actor is not allowed to see.
	ErrNotFound = errors.New("not found")
	// ErrConflict covers unique-key violations (duplicate email).
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument covers missing/empty required fields and malformed
	// enum values.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Invalid wraps ErrInvalidArgument with a caller-visible message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
