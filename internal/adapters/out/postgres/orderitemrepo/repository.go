package orderitemrepo

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderItemReader implements OrderItemReader using GORM.
type GormOrderItemReader struct {
	db *gorm.DB
}

// NewGormOrderItemReader creates a new GORM order item reader.
func NewGormOrderItemReader(db *gorm.DB) *GormOrderItemReader {
	return &GormOrderItemReader{db: db}
}

// GetByOrder retrieves all line items of an order, in all statuses.
// An order with no items at all is treated as unknown.
func (r *GormOrderItemReader) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]order.OrderItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	items := make([]order.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
