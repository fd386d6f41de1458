package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrCancelPickupCommandIsNotConstructed = errors.New(
	"CancelPickupCommand must be created via NewCancelPickupCommand constructor",
)

// CancelPickupCommand represents a request to cancel a scheduled carrier
// pickup, returning the shipment to created.
type CancelPickupCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelPickupCommand creates a command to cancel a scheduled pickup.
func NewCancelPickupCommand(shipmentID kernel.UUID) (CancelPickupCommand, error) {
	cmd := CancelPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return CancelPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPickupCommand) Validate() error {
	return c.guard.Validate(ErrCancelPickupCommandIsNotConstructed)
}

// ShipmentID returns the shipment whose pickup is being cancelled.
func (c CancelPickupCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *CancelPickupCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
