// Package orderitemrepo provides the read-only persistence view of order
// line items. Shipping consumes order items written by the order subsystem
// and never mutates them.
package orderitemrepo

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderItemDTO represents the database structure of one order line item.
type OrderItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	SellerID   uuid.UUID `gorm:"type:uuid;index"`
	Status     string    `gorm:"type:varchar(32)"`
	Quantity   int
	Price      float64 `gorm:"type:numeric(12,2)"`
	ItemTotal  float64 `gorm:"type:numeric(12,2)"`
	UnitWeight float64 `gorm:"type:numeric(10,3)"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// toDomain converts a database DTO to an order item.
func toDomain(dto OrderItemDTO) (order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.OrderItem{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.OrderItem{}, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return order.OrderItem{}, err
	}

	return order.OrderItem{
		ID:         id,
		OrderID:    orderID,
		SellerID:   sellerID,
		Status:     order.ItemStatus(dto.Status),
		Quantity:   dto.Quantity,
		Price:      dto.Price,
		ItemTotal:  dto.ItemTotal,
		UnitWeight: dto.UnitWeight,
	}, nil
}
