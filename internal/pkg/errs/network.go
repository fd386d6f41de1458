package errs

import (
	"errors"
	"fmt"
)

// ErrNetwork is the sentinel error for transient carrier transport failures.
// Operations failing with this error are safe to retry: the carrier call did
// not commit any local state.
var ErrNetwork = errors.New("network error")

// NetworkError indicates a transient failure talking to the carrier
// (timeout, connection refused, 5xx). It is the only retryable error class.
type NetworkError struct {
	Op    string
	Cause error
}

// NewNetworkError creates a NetworkError for the named carrier operation.
func NewNetworkError(op string, cause error) *NetworkError {
	return &NetworkError{Op: op, Cause: cause}
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrNetwork, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrNetwork, e.Op))
}

func (e *NetworkError) Unwrap() error {
	return ErrNetwork
}
