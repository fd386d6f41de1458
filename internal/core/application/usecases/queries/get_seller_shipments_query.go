// Package queries contains read operations for shipment data.
// Implements the query side of the CQRS architecture: handlers read the
// database directly and return flat response structures, bypassing the
// aggregate layer.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetSellerShipmentsQueryIsNotConstructed = errors.New(
	"GetSellerShipmentsQuery must be created via NewGetSellerShipmentsQuery constructor",
)

// GetSellerShipmentsQuery retrieves a seller's shipments, optionally
// narrowed to a single order.
//
// Example:
//
//	query, err := NewGetSellerShipmentsQuery(sellerID, nil)
//	if err != nil {
//	    return err
//	}
//	shipments, err := handler.Handle(ctx, query)
type GetSellerShipmentsQuery struct {
	sellerID kernel.UUID
	orderID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSellerShipmentsQuery creates a seller shipment listing query.
// orderID may be nil to list across all of the seller's orders.
func NewGetSellerShipmentsQuery(sellerID kernel.UUID, orderID *kernel.UUID) (GetSellerShipmentsQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return GetSellerShipmentsQuery{}, err
	}

	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return GetSellerShipmentsQuery{}, err
		}
	}

	return GetSellerShipmentsQuery{
		sellerID: sellerID,
		orderID:  orderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerShipmentsQueryIsNotConstructed)
}

// SellerID returns the seller whose shipments are listed.
func (q GetSellerShipmentsQuery) SellerID() kernel.UUID {
	return q.sellerID
}

// OrderID returns the optional order filter, or nil.
func (q GetSellerShipmentsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// SellerShipmentResponse is one shipment row in a seller listing.
// Pickup fields are empty strings when no pickup was ever scheduled.
type SellerShipmentResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	SellerID        kernel.UUID
	Status          string
	TrackingNumber  string
	Weight          float64
	PickupDate      string
	PickupReadyTime string
	PickupCloseTime string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
