package kernel_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPickupWindow(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		w, err := kernel.NewPickupWindow("20250314", "090000", "170000")

		require.NoError(t, err)
		assert.Equal(t, "20250314", w.DateString())
		assert.Equal(t, "090000", w.ReadyTime())
		assert.Equal(t, "170000", w.CloseTime())
		require.NoError(t, w.Validate())
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := kernel.NewPickupWindow("2025-03-14", "090000", "170000")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("malformed ready time", func(t *testing.T) {
		_, err := kernel.NewPickupWindow("20250314", "9am", "170000")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("ready equal to close rejected", func(t *testing.T) {
		_, err := kernel.NewPickupWindow("20250314", "090000", "090000")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("ready after close rejected", func(t *testing.T) {
		_, err := kernel.NewPickupWindow("20250314", "180000", "090000")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPickupWindowValidateSchedulable(t *testing.T) {
	now := time.Date(2025, 3, 13, 15, 30, 0, 0, time.UTC)

	t.Run("tomorrow is schedulable", func(t *testing.T) {
		w, err := kernel.NewPickupWindow("20250314", "090000", "170000")
		require.NoError(t, err)

		assert.NoError(t, w.ValidateSchedulable(now))
	})

	t.Run("today is rejected", func(t *testing.T) {
		w, err := kernel.NewPickupWindow("20250313", "090000", "170000")
		require.NoError(t, err)

		assert.ErrorIs(t, w.ValidateSchedulable(now), errs.ErrValueIsInvalid)
	})

	t.Run("past date is rejected", func(t *testing.T) {
		w, err := kernel.NewPickupWindow("20250301", "090000", "170000")
		require.NoError(t, err)

		assert.ErrorIs(t, w.ValidateSchedulable(now), errs.ErrValueIsInvalid)
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var w kernel.PickupWindow
		assert.Error(t, w.ValidateSchedulable(now))
	})
}

func TestRestorePickupWindow(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	w, err := kernel.RestorePickupWindow(day, "090000", "170000")
	require.NoError(t, err)
	assert.True(t, w.Date().Equal(day))
}
