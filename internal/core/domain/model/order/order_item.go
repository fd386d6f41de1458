package order

import (
	"shipping/internal/core/domain/model/kernel"
)

// ItemStatus is the order subsystem's status for a single line item.
// Only approved items are eligible inputs to shipment creation.
type ItemStatus string

const (
	// ItemStatusPending means the seller has not yet accepted the item.
	ItemStatusPending ItemStatus = "pending"

	// ItemStatusApproved means the seller accepted fulfillment
	// responsibility; the item is shippable.
	ItemStatusApproved ItemStatus = "approved"

	// ItemStatusRejected means the seller declined the item.
	ItemStatusRejected ItemStatus = "rejected"

	// ItemStatusCancelled means the buyer cancelled the item.
	ItemStatusCancelled ItemStatus = "cancelled"
)

// OrderItem is one line item of an order as supplied by the order subsystem.
// UnitWeight is the per-unit shipping weight maintained on the listing.
type OrderItem struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	SellerID   kernel.UUID
	Status     ItemStatus
	Quantity   int
	Price      float64
	ItemTotal  float64
	UnitWeight float64
}

// IsShippable reports whether the item may be included in a shipment.
func (i OrderItem) IsShippable() bool {
	return i.Status == ItemStatusApproved
}

// Weight returns the item's total shipping weight.
func (i OrderItem) Weight() float64 {
	return i.UnitWeight * float64(i.Quantity)
}
