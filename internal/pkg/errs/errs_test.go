package errs_test

import (
	"errors"
	"testing"

	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentId", "123")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("shipmentId", "123", cause)

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: shipmentId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("pickupDate")

		assert.Equal(t, "pickupDate", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: pickupDate", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("pickupDate", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: pickupDate (cause: invalid format)", err.Error())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("field\nwith newline")
		assert.Contains(t, err.Error(), "field with newline")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("sellerId")

		assert.Equal(t, "sellerId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: sellerId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("sellerId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: sellerId (cause: missing required field)", err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("delivered", "cancelled")

		assert.Equal(t, "delivered", err.From)
		assert.Equal(t, "cancelled", err.To)
		assert.Equal(t, "invalid transition: from delivered to cancelled", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal state")
		err := errs.NewInvalidTransitionErrorWithCause("delivered", "cancelled", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid transition: from delivered to cancelled (cause: terminal state)", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("shipmentId", "abc")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "abc", err.ID)
		assert.Equal(t, "concurrent modification conflict: abc", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("errors.Is matches sentinel", func(t *testing.T) {
		err := errs.NewConflictError("shipmentId", "abc")
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewNetworkError("voidShipment", cause)

	assert.Equal(t, "voidShipment", err.Op)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "network error: voidShipment (cause: connection refused)", err.Error())
	assert.ErrorIs(t, err, errs.ErrNetwork)
}

func TestCarrierError(t *testing.T) {
	t.Run("NewCarrierError", func(t *testing.T) {
		err := errs.NewCarrierError(errs.CarrierVoidWindowExpired, "void window expired")

		assert.Equal(t, errs.CarrierVoidWindowExpired, err.Code)
		assert.Equal(t, "void window expired", err.Message)
		assert.Equal(t,
			"carrier rejected request: void_window_expired: void window expired",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrCarrierRejected)
	})

	t.Run("code survives errors.As", func(t *testing.T) {
		var wrapped error = errs.NewCarrierError(errs.CarrierAlreadyPickedUp, "package collected")

		var carrierErr *errs.CarrierError
		require.ErrorAs(t, wrapped, &carrierErr)
		assert.Equal(t, errs.CarrierAlreadyPickedUp, carrierErr.Code)
	})
}

func TestSentinelErrors(t *testing.T) {
	require.Error(t, errs.ErrObjectNotFound)
	require.Error(t, errs.ErrValueIsInvalid)
	require.Error(t, errs.ErrValueIsRequired)
	require.Error(t, errs.ErrInvalidTransition)
	require.Error(t, errs.ErrConflict)
	require.Error(t, errs.ErrNetwork)
	require.Error(t, errs.ErrCarrierRejected)
}
