package shipmentrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
// The partial unique index on active (order, seller) rows turns a racing
// duplicate insert into a ConflictError.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return errs.NewConflictErrorWithCause("shipment", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment unconditionally.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWithStatusCheck saves an existing shipment only if its stored
// status still equals expectedStatus. The status predicate makes the write
// a compare-and-swap: of two racing writers the second matches zero rows
// and receives ConflictError.
func (r *GormShipmentRepository) UpdateWithStatusCheck(
	ctx context.Context,
	aggregate *shipment.Shipment,
	expectedStatus shipment.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Updates(map[string]any{
			"status":            dto.Status,
			"tracking_number":   dto.TrackingNumber,
			"label_payload":     dto.LabelPayload,
			"pickup_date":       dto.PickupDate,
			"pickup_ready_time": dto.PickupReadyTime,
			"pickup_close_time": dto.PickupCloseTime,
			"updated_at":        dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("shipment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByOrderAndSeller retrieves the non-terminal shipment for an
// (order, seller) pair.
func (r *GormShipmentRepository) GetActiveByOrderAndSeller(
	ctx context.Context,
	orderID, sellerID kernel.UUID,
) (*shipment.Shipment, error) {
	if err := errors.Join(orderID.Validate(), sellerID.Validate()); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND seller_id = ? AND status NOT IN ?",
			orderID.Bytes(), sellerID.Bytes(), terminalStatusStrings()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySeller retrieves all of a seller's shipments, optionally narrowed to
// one order. Newest first.
func (r *GormShipmentRepository) GetBySeller(
	ctx context.Context,
	sellerID kernel.UUID,
	orderID *kernel.UUID,
) ([]*shipment.Shipment, error) {
	if err := sellerID.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Where("seller_id = ?", sellerID.Bytes())
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
		tx = tx.Where("order_id = ?", orderID.Bytes())
	}

	var dtos []ShipmentDTO
	if err := tx.Order("created_at DESC, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInStatuses retrieves shipments whose status is in the given set.
func (r *GormShipmentRepository) GetAllInStatuses(
	ctx context.Context,
	statuses []shipment.Status,
) ([]*shipment.Shipment, error) {
	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return nil, err
		}
		names = append(names, status.String())
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status IN ?", names).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

func terminalStatusStrings() []string {
	return []string{
		shipment.Delivered.String(),
		shipment.Cancelled.String(),
		shipment.Returned.String(),
	}
}
