// Package apperr defines the failure taxonomy shared by the registries.
// No registry operation is fatal; everything is reported as an error value.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a record, index, or key could not be resolved.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyDeleted means a soft delete targeted an already-deleted record.
	ErrAlreadyDeleted = errors.New("already deleted")
	// ErrNotDeleted means a restore targeted a record that is not deleted.
	ErrNotDeleted = errors.New("not deleted")
	// ErrNoFields means an update supplied nothing to change.
	ErrNoFields = errors.New("no fields to update")
)

// ValidationError reports rejected caller input with a human-readable reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validationf builds a ValidationError.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistError reports a failed disk write. The in-memory mutation it refers
// to has already been applied and is not rolled back; callers see the updated
// state together with this error.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string { return fmt.Sprintf("persist: %v", e.Err) }

func (e *PersistError) Unwrap() error { return e.Err }

// IsPersist reports whether err is a persistence failure.
func IsPersist(err error) bool {
	var pe *PersistError
	return errors.As(err, &pe)
}
