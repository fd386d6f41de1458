package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrProcessShipmentCommandIsNotConstructed = errors.New(
	"ProcessShipmentCommand must be created via NewProcessShipmentCommand constructor",
)

// ProcessShipmentCommand represents a request to process a pending shipment
// with the carrier, obtaining its tracking number and label.
type ProcessShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessShipmentCommand creates a command to process a shipment.
func NewProcessShipmentCommand(shipmentID kernel.UUID) (ProcessShipmentCommand, error) {
	cmd := ProcessShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return ProcessShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessShipmentCommand) Validate() error {
	return c.guard.Validate(ErrProcessShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to process.
func (c ProcessShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *ProcessShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
