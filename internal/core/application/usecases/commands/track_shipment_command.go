package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrTrackShipmentCommandIsNotConstructed = errors.New(
	"TrackShipmentCommand must be created via NewTrackShipmentCommand constructor",
)

// TrackShipmentCommand represents a request to refresh a shipment's status
// from the carrier. simulateStatus, when non-empty, asks the development
// simulator to report that status instead of querying real tracking.
type TrackShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID     kernel.UUID
	simulateStatus string

	guard guard.ConstructorGuard
}

// NewTrackShipmentCommand creates a tracking command.
// simulateStatus may be empty; whether a non-empty value is honored is
// decided by the handler's capability configuration.
func NewTrackShipmentCommand(shipmentID kernel.UUID, simulateStatus string) (TrackShipmentCommand, error) {
	cmd := TrackShipmentCommand{
		simulateStatus: simulateStatus,
		guard:          guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return TrackShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TrackShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTrackShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to track.
func (c TrackShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// SimulateStatus returns the requested simulation key, or "" for real tracking.
func (c TrackShipmentCommand) SimulateStatus() string {
	return c.simulateStatus
}

func (c *TrackShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
