// Package commands contains business operations that modify shipment state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent protocol: validate the
// request and current status locally (fail fast, no carrier call), invoke
// the carrier, and only on carrier success commit the new status through a
// compare-and-swap update. A failed carrier call leaves the shipment at its
// prior status.
package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// OrderItemReaderFactory provides access to the order item read view.
	OrderItemReaderFactory interface {
		OrderItemReader() ports.OrderItemReader
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// UoW manages transactions spanning shipments and the order item view.
	// Used by shipment creation, which reads order items and writes shipments.
	UoW interface {
		TxManager
		ShipmentRepoFactory
		OrderItemReaderFactory
	}

	// UoWFactory creates new unit of work instances for cross-view operations.
	UoWFactory interface {
		Create() UoW
	}
)
