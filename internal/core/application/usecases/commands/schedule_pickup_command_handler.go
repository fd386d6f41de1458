package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// SchedulePickupCommandHandler books carrier pickups for created shipments.
//
// Validation order follows the lifecycle protocol: window schedulability
// (date is tomorrow or later) and current status are checked locally
// before the carrier is contacted; the pickup_scheduled status is committed
// only after the carrier confirms.
type SchedulePickupCommandHandler struct {
	uowFactory ShipmentUoWFactory
	carrier    ports.CarrierAdapter
	now        func() time.Time
}

// NewSchedulePickupCommandHandler creates a handler for pickup scheduling.
func NewSchedulePickupCommandHandler(
	uowFactory ShipmentUoWFactory,
	carrier ports.CarrierAdapter,
) SchedulePickupCommandHandler {
	return SchedulePickupCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the pickup scheduling command.
func (h *SchedulePickupCommandHandler) Handle(ctx context.Context, cmd SchedulePickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Window().ValidateSchedulable(h.now()); err != nil {
		return err
	}

	aggregate, err := h.uowFactory.Create().ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	// Fail fast before the carrier call if the shipment is not created.
	if _, err = aggregate.Status().SchedulePickup(); err != nil {
		return err
	}

	if err = h.carrier.SchedulePickup(ctx, aggregate.ID(), cmd.Window()); err != nil {
		return err
	}

	if err = aggregate.SchedulePickup(cmd.Window()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().UpdateWithStatusCheck(ctx, aggregate, shipment.Created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
