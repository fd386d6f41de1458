package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
)

// OrderItemReader is the read-only view into the order subsystem.
// Shipping never mutates order items.
type OrderItemReader interface {
	// GetByOrder retrieves all line items of an order, in all statuses.
	// Returns ObjectNotFoundError if the order does not exist.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]order.OrderItem, error)
}
