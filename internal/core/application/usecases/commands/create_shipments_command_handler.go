package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// CreatedShipment describes one per-seller shipment produced by the create
// operation.
type CreatedShipment struct {
	ShipmentID     kernel.UUID
	SellerID       kernel.UUID
	Status         shipment.Status
	TrackingNumber string
	Weight         float64
	Total          float64
}

// CreateShipmentsCommandHandler turns an order's approved items into carrier
// shipments, one per seller group.
//
// For each group the handler follows the lifecycle protocol: verify no
// active shipment exists for the (order, seller) pair, register the group
// with the carrier, persist the pending shipment, process it with the
// carrier for a tracking number and label, and commit the created status.
// A shipment whose processing step failed stays pending and is reconciled
// by a follow-up process call.
type CreateShipmentsCommandHandler struct {
	uowFactory UoWFactory
	carrier    ports.CarrierAdapter
	aggregator services.OrderItemAggregator

	// Origin attributes applied to every shipment; sourced from the seller
	// profile configuration.
	shipperAddress     string
	serviceDescription string
}

// NewCreateShipmentsCommandHandler creates a handler for shipment creation.
func NewCreateShipmentsCommandHandler(
	uowFactory UoWFactory,
	carrier ports.CarrierAdapter,
	shipperAddress string,
	serviceDescription string,
) CreateShipmentsCommandHandler {
	return CreateShipmentsCommandHandler{
		uowFactory:         uowFactory,
		carrier:            carrier,
		aggregator:         services.NewOrderItemAggregator(),
		shipperAddress:     shipperAddress,
		serviceDescription: serviceDescription,
	}
}

// Handle processes the create command and returns the per-seller results.
//
// Creation is not cancellable by client disconnection: once initiated, the
// carrier calls and commits run detached from the caller's cancellation so
// a dropped connection cannot leave an unknown shipment hanging. Groups are
// handled independently; an error aborts the remaining groups but already
// committed shipments stay committed.
func (h *CreateShipmentsCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentsCommand,
) ([]CreatedShipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)

	items, err := h.uowFactory.Create().OrderItemReader().GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	groups, err := h.aggregator.Aggregate(items)
	if err != nil {
		return nil, err
	}

	results := make([]CreatedShipment, 0, len(groups))
	for _, group := range groups {
		created, groupErr := h.createForGroup(ctx, cmd.OrderID(), group)
		if groupErr != nil {
			return results, groupErr
		}
		results = append(results, created)
	}

	return results, nil
}

func (h *CreateShipmentsCommandHandler) createForGroup(
	ctx context.Context,
	orderID kernel.UUID,
	group services.SellerGroup,
) (CreatedShipment, error) {
	if err := h.ensureNoActiveShipment(ctx, orderID, group.SellerID); err != nil {
		return CreatedShipment{}, err
	}

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		orderID,
		group.SellerID,
		group.Weight,
		h.serviceDescription,
		h.shipperAddress,
	)
	if err != nil {
		return CreatedShipment{}, err
	}

	_, err = h.carrier.CreateShipment(ctx, ports.CreateShipmentRequest{
		ShipmentID:         aggregate.ID(),
		OrderID:            orderID,
		SellerID:           group.SellerID,
		Weight:             group.Weight,
		ServiceDescription: h.serviceDescription,
		ShipperAddress:     h.shipperAddress,
	})
	if err != nil {
		return CreatedShipment{}, err
	}

	if err = h.persistPending(ctx, aggregate); err != nil {
		return CreatedShipment{}, err
	}

	result, err := h.carrier.ProcessShipment(ctx, aggregate.ID())
	if err != nil {
		// The shipment stays pending; a follow-up process call reconciles.
		return CreatedShipment{}, err
	}

	if err = aggregate.AttachLabel(result.TrackingNumber, result.LabelPayload); err != nil {
		return CreatedShipment{}, err
	}

	if err = h.commitWithStatusCheck(ctx, aggregate, shipment.Pending); err != nil {
		return CreatedShipment{}, err
	}

	return CreatedShipment{
		ShipmentID:     aggregate.ID(),
		SellerID:       group.SellerID,
		Status:         aggregate.Status(),
		TrackingNumber: aggregate.TrackingNumber(),
		Weight:         group.Weight,
		Total:          group.Total,
	}, nil
}

func (h *CreateShipmentsCommandHandler) ensureNoActiveShipment(
	ctx context.Context,
	orderID, sellerID kernel.UUID,
) error {
	existing, err := h.uowFactory.Create().ShipmentRepository().GetActiveByOrderAndSeller(ctx, orderID, sellerID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	return errs.NewConflictError("shipment", existing.ID().String())
}

func (h *CreateShipmentsCommandHandler) persistPending(ctx context.Context, aggregate *shipment.Shipment) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateShipmentsCommandHandler) commitWithStatusCheck(
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
