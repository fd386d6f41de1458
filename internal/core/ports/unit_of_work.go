package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request or
// command, ensuring proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction when one is active.
	ShipmentRepository() ShipmentRepository

	// OrderItemReader returns the read-only order item view bound to the
	// current transaction when one is active.
	OrderItemReader() OrderItemReader
}
