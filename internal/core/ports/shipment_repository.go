package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Shipments are never physically deleted; terminal statuses are
// retained for audit and history.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate.
	// Fails with ConflictError if an active (non-terminal) shipment already
	// exists for the same (order, seller) pair.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment unconditionally.
	// Used only for mutations that cannot race (e.g. within a transaction
	// that already holds the row).
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// UpdateWithStatusCheck persists changes only if the stored status still
	// equals expectedStatus (compare-and-swap). A losing concurrent writer
	// receives ConflictError and must re-read and retry or abort.
	UpdateWithStatusCheck(ctx context.Context, aggregate *shipment.Shipment, expectedStatus shipment.Status) error

	// Get retrieves a shipment by its unique identifier.
	// Returns ObjectNotFoundError if no such shipment exists.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetActiveByOrderAndSeller retrieves the active (non-terminal) shipment
	// for an (order, seller) pair, or ObjectNotFoundError if none exists.
	GetActiveByOrderAndSeller(ctx context.Context, orderID, sellerID kernel.UUID) (*shipment.Shipment, error)

	// GetBySeller retrieves all shipments for a seller, optionally filtered
	// by order. orderID may be nil for no filter.
	GetBySeller(ctx context.Context, sellerID kernel.UUID, orderID *kernel.UUID) ([]*shipment.Shipment, error)

	// GetAllInStatuses retrieves shipments whose status is in the given set.
	// Used by the tracking refresh job to find shipments worth polling.
	GetAllInStatuses(ctx context.Context, statuses []shipment.Status) ([]*shipment.Shipment, error)
}
