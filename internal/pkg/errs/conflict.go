package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel error for concurrent mutations that lost a
// compare-and-swap race. Callers must re-read the shipment and retry or abort.
var ErrConflict = errors.New("concurrent modification conflict")

// ConflictError indicates that another writer changed the object between the
// caller's read and its attempted update.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError for the named parameter and identifier.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
