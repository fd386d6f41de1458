package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrVoidShipmentCommandIsNotConstructed = errors.New(
	"VoidShipmentCommand must be created via NewVoidShipmentCommand constructor",
)

// VoidShipmentCommand represents a request to void a shipment before pickup,
// subject to the carrier void window.
type VoidShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVoidShipmentCommand creates a command to void a shipment.
func NewVoidShipmentCommand(shipmentID kernel.UUID) (VoidShipmentCommand, error) {
	cmd := VoidShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return VoidShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VoidShipmentCommand) Validate() error {
	return c.guard.Validate(ErrVoidShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to void.
func (c VoidShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *VoidShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
