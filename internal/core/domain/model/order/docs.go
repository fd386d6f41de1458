// Package order holds the read-only view of the order subsystem consumed by
// the shipping domain. Order items are owned by the order service; shipping
// only reads them to decide what is shippable, so they are plain value
// structs rather than guarded aggregates.
package order
