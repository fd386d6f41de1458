package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrSchedulePickupCommandIsNotConstructed = errors.New(
	"SchedulePickupCommand must be created via NewSchedulePickupCommand constructor",
)

// SchedulePickupCommand represents a request to book a carrier pickup for a
// shipment within a ready/close time window.
//
// The window's structural rules (wire formats, ready before close) are
// enforced here at construction; the tomorrow-or-later rule is checked by
// the handler against the current clock.
type SchedulePickupCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	window     kernel.PickupWindow

	guard guard.ConstructorGuard
}

// NewSchedulePickupCommand creates a pickup scheduling command from carrier
// wire formats: pickupDate as YYYYMMDD, readyTime and closeTime as HHMM00.
func NewSchedulePickupCommand(
	shipmentID kernel.UUID,
	pickupDate, readyTime, closeTime string,
) (SchedulePickupCommand, error) {
	cmd := SchedulePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	window, err := kernel.NewPickupWindow(pickupDate, readyTime, closeTime)
	if err != nil {
		return SchedulePickupCommand{}, err
	}
	cmd.window = window

	if err = cmd.setShipmentID(shipmentID); err != nil {
		return SchedulePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SchedulePickupCommand) Validate() error {
	return c.guard.Validate(ErrSchedulePickupCommandIsNotConstructed)
}

// ShipmentID returns the shipment to schedule a pickup for.
func (c SchedulePickupCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Window returns the requested pickup window.
func (c SchedulePickupCommand) Window() kernel.PickupWindow {
	return c.window
}

func (c *SchedulePickupCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
