package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure classes lifecycle operations can
// produce. Callers branch with errors.Is instead of comparing messages.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConstraint = errors.New("constraint violated")
)

// Error carries a typed failure with a human-readable message suitable for
// flashing back to the user.
type Error struct {
	Err     error  // sentinel this error wraps
	Message string // human-readable message
	Field   string // optional: field causing the error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports that no record of the given kind exists under id.
func NotFound(kind, id string) *Error {
	return &Error{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s with id %s does not exist", kind, id),
	}
}

// Validation reports a missing or malformed required field.
func Validation(field, message string) *Error {
	return &Error{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Constraint reports a referential or uniqueness violation from the store.
func Constraint(message string) *Error {
	return &Error{
		Err:     ErrConstraint,
		Message: message,
	}
}
