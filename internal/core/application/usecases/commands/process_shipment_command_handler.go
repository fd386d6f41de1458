package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// ProcessedShipment carries the carrier-issued identifiers returned by
// processing a shipment.
type ProcessedShipment struct {
	TrackingNumber string
	LabelPayload   string
}

// ProcessShipmentCommandHandler processes a pending shipment with the
// carrier: the carrier rates it and purchases its label, and the shipment
// becomes created with its tracking number and label payload attached.
//
// Processing is strictly single-use: a shipment that already carries a
// label fails the local status check before any carrier call, so labels
// are never reissued.
type ProcessShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	carrier    ports.CarrierAdapter
}

// NewProcessShipmentCommandHandler creates a handler for shipment processing.
func NewProcessShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	carrier ports.CarrierAdapter,
) ProcessShipmentCommandHandler {
	return ProcessShipmentCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
	}
}

// Handle processes the command: local status validation, carrier call,
// compare-and-swap commit. A failed carrier call leaves the shipment
// pending.
func (h *ProcessShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessShipmentCommand,
) (ProcessedShipment, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessedShipment{}, err
	}

	// Processing completes or fails independent of the caller's connection,
	// matching the creation path.
	ctx = context.WithoutCancel(ctx)

	aggregate, err := h.uowFactory.Create().ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return ProcessedShipment{}, err
	}

	// Fail fast before the carrier call if the shipment is not pending.
	if _, err = aggregate.Status().Process(); err != nil {
		return ProcessedShipment{}, err
	}

	result, err := h.carrier.ProcessShipment(ctx, aggregate.ID())
	if err != nil {
		return ProcessedShipment{}, err
	}

	if err = aggregate.AttachLabel(result.TrackingNumber, result.LabelPayload); err != nil {
		return ProcessedShipment{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ProcessedShipment{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().UpdateWithStatusCheck(ctx, aggregate, shipment.Pending); err != nil {
		return ProcessedShipment{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProcessedShipment{}, err
	}

	return ProcessedShipment{
		TrackingNumber: aggregate.TrackingNumber(),
		LabelPayload:   aggregate.LabelPayload(),
	}, nil
}
