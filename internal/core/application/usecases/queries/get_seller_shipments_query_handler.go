package queries

import (
	"context"
	"database/sql"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSellerShipmentsQueryHandler lists a seller's shipments from the
// database. All statuses are included, terminal ones too, so sellers see
// their full shipping history.
type GetSellerShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerShipmentsQueryHandler creates a handler for seller shipment
// listings.
func NewGetSellerShipmentsQueryHandler(db *gorm.DB) GetSellerShipmentsQueryHandler {
	return GetSellerShipmentsQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by creation time,
// newest first, with id as a tie-breaker for stable output.
func (h GetSellerShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetSellerShipmentsQuery,
) ([]SellerShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			order_id,
			seller_id,
			status,
			tracking_number,
			weight,
			pickup_date,
			pickup_ready_time,
			pickup_close_time,
			created_at,
			updated_at
		FROM shipments
		WHERE seller_id = ?
	`
	args := []any{query.SellerID().String()}

	if query.OrderID() != nil {
		sqlText += ` AND order_id = ?`
		args = append(args, query.OrderID().String())
	}

	sqlText += ` ORDER BY created_at DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]SellerShipmentResponse, 0)

	for rows.Next() {
		var (
			resp            SellerShipmentResponse
			id              uuid.UUID
			orderID         uuid.UUID
			sellerID        uuid.UUID
			trackingNumber  sql.NullString
			pickupDate      sql.NullTime
			pickupReadyTime sql.NullString
			pickupCloseTime sql.NullString
		)

		err = rows.Scan(
			&id,
			&orderID,
			&sellerID,
			&resp.Status,
			&trackingNumber,
			&resp.Weight,
			&pickupDate,
			&pickupReadyTime,
			&pickupCloseTime,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
			return nil, err
		}

		resp.TrackingNumber = trackingNumber.String
		if pickupDate.Valid {
			resp.PickupDate = pickupDate.Time.UTC().Format(kernel.PickupDateLayout)
		}
		resp.PickupReadyTime = pickupReadyTime.String
		resp.PickupCloseTime = pickupCloseTime.String

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
