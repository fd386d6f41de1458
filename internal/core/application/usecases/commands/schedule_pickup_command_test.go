package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedulePickupCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewSchedulePickupCommand(id, "20250314", "090000", "170000")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, "20250314", cmd.Window().DateString())
	assert.Equal(t, "090000", cmd.Window().ReadyTime())
	assert.Equal(t, "170000", cmd.Window().CloseTime())
}

func TestNewSchedulePickupCommand_InvalidShipmentID(t *testing.T) {
	_, err := commands.NewSchedulePickupCommand(kernel.UUID{}, "20250314", "090000", "170000")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewSchedulePickupCommand_InvalidDateFormat(t *testing.T) {
	for _, date := range []string{"2025-03-14", "20251340", "tomorrow", ""} {
		t.Run(date, func(t *testing.T) {
			_, err := commands.NewSchedulePickupCommand(kernel.NewUUID(), date, "090000", "170000")
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestNewSchedulePickupCommand_ReadyNotBeforeClose(t *testing.T) {
	_, err := commands.NewSchedulePickupCommand(kernel.NewUUID(), "20250314", "170000", "090000")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewSchedulePickupCommand(kernel.NewUUID(), "20250314", "090000", "090000")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSchedulePickupCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.SchedulePickupCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSchedulePickupCommandIsNotConstructed)
}
