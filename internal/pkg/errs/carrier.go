package errs

import (
	"errors"
	"fmt"
)

// ErrCarrierRejected is the sentinel error for carrier-side rejections.
// These are terminal for the attempt and are never retried.
var ErrCarrierRejected = errors.New("carrier rejected request")

// CarrierErrorCode classifies a carrier-side rejection so callers can render
// specific guidance instead of a generic failure.
type CarrierErrorCode string

const (
	// CarrierVoidWindowExpired means the carrier's void window has closed.
	CarrierVoidWindowExpired CarrierErrorCode = "void_window_expired"

	// CarrierAlreadyPickedUp means the package was already collected and the
	// requested operation no longer applies.
	CarrierAlreadyPickedUp CarrierErrorCode = "already_picked_up"

	// CarrierAlreadyDelivered means the package reached its destination.
	CarrierAlreadyDelivered CarrierErrorCode = "already_delivered"

	// CarrierRejectedOther covers rejections the carrier did not classify.
	CarrierRejectedOther CarrierErrorCode = "rejected"
)

// CarrierError indicates the carrier processed the request and refused it.
// The Code distinguishes rejection classes; Message carries the carrier's
// human-readable reason.
type CarrierError struct {
	Code    CarrierErrorCode
	Message string
	Cause   error
}

// NewCarrierError creates a CarrierError with the given classification and reason.
func NewCarrierError(code CarrierErrorCode, message string) *CarrierError {
	return &CarrierError{Code: code, Message: message}
}

// NewCarrierErrorWithCause creates a CarrierError wrapping an underlying cause.
func NewCarrierErrorWithCause(code CarrierErrorCode, message string, cause error) *CarrierError {
	return &CarrierError{Code: code, Message: message, Cause: cause}
}

func (e *CarrierError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s: %s (cause: %s)", ErrCarrierRejected, e.Code, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrCarrierRejected, e.Code, e.Message))
}

func (e *CarrierError) Unwrap() error {
	return ErrCarrierRejected
}
