package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// CreateShipmentRequest describes one seller group of an order being
// registered with the carrier.
type CreateShipmentRequest struct {
	ShipmentID         kernel.UUID
	OrderID            kernel.UUID
	SellerID           kernel.UUID
	Weight             float64
	ServiceDescription string
	ShipperAddress     string
}

// ShipmentStub is the carrier's acknowledgement of a created shipment,
// before processing has issued a tracking number.
type ShipmentStub struct {
	ShipmentID kernel.UUID
	CarrierRef string
}

// ProcessResult carries the carrier-issued tracking number and opaque label
// payload produced by processing a shipment.
type ProcessResult struct {
	TrackingNumber string
	LabelPayload   string
}

// TrackingStatus is the carrier's current view of a shipment, already
// translated into the domain status vocabulary.
type TrackingStatus struct {
	Status      shipment.Status
	Description string
}

// CarrierAdapter wraps the external carrier's API behind one interface.
//
// Contract: every call either fully succeeds, allowing the caller to commit
// local state, or fails without partial local effect. Transient transport
// failures surface as NetworkError (retryable); carrier-side rejections
// surface as CarrierError with a structured code (terminal for the
// attempt). Each call observes the context deadline.
type CarrierAdapter interface {
	// CreateShipment registers a seller group with the carrier.
	CreateShipment(ctx context.Context, req CreateShipmentRequest) (ShipmentStub, error)

	// ProcessShipment rates the shipment and purchases its label, returning
	// the tracking number and label payload.
	ProcessShipment(ctx context.Context, shipmentID kernel.UUID) (ProcessResult, error)

	// SchedulePickup books a carrier pickup visit within the window.
	SchedulePickup(ctx context.Context, shipmentID kernel.UUID, window kernel.PickupWindow) error

	// CancelPickup cancels a previously booked pickup visit.
	CancelPickup(ctx context.Context, shipmentID kernel.UUID) error

	// VoidShipment voids the shipment with the carrier. Rejections such as
	// an expired void window return a CarrierError with the matching code.
	VoidShipment(ctx context.Context, shipmentID kernel.UUID) error

	// TrackShipment returns the carrier's current status for the shipment.
	// simulateStatus, when non-empty, asks the carrier sandbox to report
	// that status instead of the real one; production adapters ignore it.
	TrackShipment(ctx context.Context, shipmentID kernel.UUID, simulateStatus string) (TrackingStatus, error)
}
