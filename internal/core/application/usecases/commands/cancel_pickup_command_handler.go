package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// CancelPickupCommandHandler cancels scheduled carrier pickups.
// The reversal to created is committed only after the carrier confirms the
// cancellation; otherwise the shipment stays pickup_scheduled.
type CancelPickupCommandHandler struct {
	uowFactory ShipmentUoWFactory
	carrier    ports.CarrierAdapter
}

// NewCancelPickupCommandHandler creates a handler for pickup cancellation.
func NewCancelPickupCommandHandler(
	uowFactory ShipmentUoWFactory,
	carrier ports.CarrierAdapter,
) CancelPickupCommandHandler {
	return CancelPickupCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
	}
}

// Handle processes the pickup cancellation command.
func (h *CancelPickupCommandHandler) Handle(ctx context.Context, cmd CancelPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.uowFactory.Create().ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	// Fail fast before the carrier call if no pickup is scheduled.
	if _, err = aggregate.Status().CancelPickup(); err != nil {
		return err
	}

	if err = h.carrier.CancelPickup(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = aggregate.CancelPickup(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().UpdateWithStatusCheck(ctx, aggregate, shipment.PickupScheduled); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
