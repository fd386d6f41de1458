package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// VoidShipmentCommandHandler voids shipments still inside the carrier void
// window.
//
// The eligibility policy runs before any carrier call; an ineligible
// shipment yields a decision with a specific reason and no side effects.
// For eligible shipments the cancelled status is committed through a
// compare-and-swap, so of two racing void calls exactly one succeeds and
// the other receives ConflictError.
type VoidShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	carrier    ports.CarrierAdapter
	policy     services.VoidEligibilityPolicy
	now        func() time.Time
}

// NewVoidShipmentCommandHandler creates a handler for shipment voiding.
func NewVoidShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	carrier ports.CarrierAdapter,
) VoidShipmentCommandHandler {
	return VoidShipmentCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
		policy:     services.NewVoidEligibilityPolicy(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the void command. The returned decision reports
// eligibility; when it is ineligible the error is nil and the shipment is
// untouched, letting the caller render the specific reason.
func (h *VoidShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd VoidShipmentCommand,
) (services.VoidDecision, error) {
	if err := cmd.Validate(); err != nil {
		return services.VoidDecision{}, err
	}

	aggregate, err := h.uowFactory.Create().ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return services.VoidDecision{}, err
	}

	decision := h.policy.CanVoid(aggregate, h.now())
	if !decision.Eligible {
		return decision, nil
	}

	priorStatus := aggregate.Status()

	if err = h.carrier.VoidShipment(ctx, aggregate.ID()); err != nil {
		return services.VoidDecision{}, err
	}

	if err = aggregate.Void(); err != nil {
		return services.VoidDecision{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return services.VoidDecision{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().UpdateWithStatusCheck(ctx, aggregate, priorStatus); err != nil {
		return services.VoidDecision{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.VoidDecision{}, err
	}

	return decision, nil
}
