package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"
)

// statusFor maps an application error to its HTTP status code.
//
// The two 409 classes are deliberate: both a lost compare-and-swap race and
// a disallowed lifecycle edge mean "the shipment is not in the state you
// think it is", and clients handle them the same way, by re-reading.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, services.ErrNoShippableItems):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrCarrierRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrNetwork):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
