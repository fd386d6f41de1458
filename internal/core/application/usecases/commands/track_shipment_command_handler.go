package commands

import (
	"context"
	"errors"

	"shipping/internal/core/application/simulation"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// TrackedShipment is the shipment view returned after a tracking refresh.
type TrackedShipment struct {
	ShipmentID     string
	Status         shipment.Status
	TrackingNumber string
	Description    string
}

// TrackShipmentCommandHandler refreshes a shipment's status from the
// carrier and advances the lifecycle along the reported tracking edge.
//
// Simulated tracking is honored only when the handler was constructed with
// a simulator (development capability flag); otherwise simulateStatus is
// rejected outright. Simulation keys are validated before any carrier
// call, so arbitrary strings never reach the carrier or mutate state.
type TrackShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	carrier    ports.CarrierAdapter

	// simulator is nil outside development deployments.
	simulator *simulation.TrackingSimulator
}

// NewTrackShipmentCommandHandler creates a handler for tracking refreshes.
// simulator may be nil, which disables simulated tracking entirely.
func NewTrackShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	carrier ports.CarrierAdapter,
	simulator *simulation.TrackingSimulator,
) TrackShipmentCommandHandler {
	return TrackShipmentCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
		simulator:  simulator,
	}
}

// Handle processes the tracking command and returns the updated shipment
// view. A carrier status equal to the current one is a no-op; a status
// outside the transition table fails with InvalidTransition and leaves the
// record unchanged.
func (h *TrackShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd TrackShipmentCommand,
) (TrackedShipment, error) {
	if err := cmd.Validate(); err != nil {
		return TrackedShipment{}, err
	}

	if cmd.SimulateStatus() != "" {
		if h.simulator == nil {
			return TrackedShipment{}, errs.NewValueIsInvalidErrorWithCause("simulateStatus",
				errors.New("tracking simulation is not enabled"))
		}
		if _, err := h.simulator.Resolve(cmd.SimulateStatus()); err != nil {
			return TrackedShipment{}, err
		}
	}

	aggregate, err := h.uowFactory.Create().ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return TrackedShipment{}, err
	}

	tracking, err := h.carrier.TrackShipment(ctx, aggregate.ID(), cmd.SimulateStatus())
	if err != nil {
		return TrackedShipment{}, err
	}

	priorStatus := aggregate.Status()

	if err = aggregate.ApplyTracking(tracking.Status); err != nil {
		return TrackedShipment{}, err
	}

	if aggregate.Status() != priorStatus {
		if err = h.commit(ctx, aggregate, priorStatus); err != nil {
			return TrackedShipment{}, err
		}
	}

	return TrackedShipment{
		ShipmentID:     aggregate.ID().String(),
		Status:         aggregate.Status(),
		TrackingNumber: aggregate.TrackingNumber(),
		Description:    tracking.Description,
	}, nil
}

func (h *TrackShipmentCommandHandler) commit(
	ctx context.Context,
	aggregate *shipment.Shipment,
	expected shipment.Status,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRepository().UpdateWithStatusCheck(ctx, aggregate, expected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
