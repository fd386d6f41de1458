package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackShipmentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewTrackShipmentCommand(id, "in_transit")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, "in_transit", cmd.SimulateStatus())
}

func TestNewTrackShipmentCommand_EmptySimulateStatus(t *testing.T) {
	cmd, err := commands.NewTrackShipmentCommand(kernel.NewUUID(), "")
	require.NoError(t, err)
	assert.Empty(t, cmd.SimulateStatus())
}

func TestNewTrackShipmentCommand_InvalidShipmentID(t *testing.T) {
	_, err := commands.NewTrackShipmentCommand(kernel.UUID{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestTrackShipmentCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.TrackShipmentCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTrackShipmentCommandIsNotConstructed)
}
