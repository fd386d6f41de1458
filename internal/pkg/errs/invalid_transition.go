package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel error for shipment status changes
// that are not present in the lifecycle transition table.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError indicates that a requested status change is not an
// edge of the shipment lifecycle. The shipment is left unchanged when this
// error is returned.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the rejected edge.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: from %s to %s (cause: %s)", ErrInvalidTransition, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
