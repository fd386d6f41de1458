package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrCreateShipmentsCommandIsNotConstructed = errors.New(
	"CreateShipmentsCommand must be created via NewCreateShipmentsCommand constructor",
)

// CreateShipmentsCommand represents a request to turn an order's approved
// items into carrier shipments, one per seller.
//
// Example:
//
//	cmd, err := NewCreateShipmentsCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentsCommand creates a command to ship an order.
// Validates that the order id is valid.
func NewCreateShipmentsCommand(orderID kernel.UUID) (CreateShipmentsCommand, error) {
	cmd := CreateShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CreateShipmentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentsCommandIsNotConstructed)
}

// OrderID returns the order to ship.
func (c CreateShipmentsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CreateShipmentsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
