// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. Implements the repository pattern for the
// shipment aggregate, converting between domain entities and database rows.
package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Status is stored as text so rows stay readable in ad-hoc
// queries and the CAS predicate survives enum reordering.
//
// The partial unique index enforces at most one active shipment per
// (order, seller) pair; terminal rows are kept for history and do not
// block re-shipping.
type ShipmentDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID  `gorm:"type:uuid;index:idx_shipments_active,unique,where:status NOT IN ('delivered','cancelled','returned')"`
	SellerID           uuid.UUID  `gorm:"type:uuid;index:idx_shipments_active,unique,where:status NOT IN ('delivered','cancelled','returned');index"`
	Status             string     `gorm:"type:varchar(32);index"`
	TrackingNumber     *string    `gorm:"type:varchar(64)"`
	LabelPayload       *string    `gorm:"type:text"`
	Weight             float64    `gorm:"type:numeric(10,3)"`
	ServiceDescription string     `gorm:"type:varchar(128)"`
	ShipperAddress     string     `gorm:"type:varchar(256)"`
	PickupDate         *time.Time `gorm:"type:timestamptz"`
	PickupReadyTime    *string    `gorm:"type:varchar(6)"`
	PickupCloseTime    *string    `gorm:"type:varchar(6)"`
	CreatedAt          time.Time  `gorm:"type:timestamptz"`
	UpdatedAt          time.Time  `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	dto := ShipmentDTO{
		ID:                 aggregate.ID().Bytes(),
		OrderID:            aggregate.OrderID().Bytes(),
		SellerID:           aggregate.SellerID().Bytes(),
		Status:             aggregate.Status().String(),
		Weight:             aggregate.Weight(),
		ServiceDescription: aggregate.ServiceDescription(),
		ShipperAddress:     aggregate.ShipperAddress(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}

	if tn := aggregate.TrackingNumber(); tn != "" {
		dto.TrackingNumber = &tn
	}
	if lp := aggregate.LabelPayload(); lp != "" {
		dto.LabelPayload = &lp
	}

	if window := aggregate.PickupWindow(); window != nil {
		date := window.Date()
		ready := window.ReadyTime()
		closeTime := window.CloseTime()
		dto.PickupDate = &date
		dto.PickupReadyTime = &ready
		dto.PickupCloseTime = &closeTime
	}

	return dto
}

// toDomain converts a database DTO to a shipment aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var window *kernel.PickupWindow
	if dto.PickupDate != nil && dto.PickupReadyTime != nil && dto.PickupCloseTime != nil {
		w, windowErr := kernel.RestorePickupWindow(*dto.PickupDate, *dto.PickupReadyTime, *dto.PickupCloseTime)
		if windowErr != nil {
			return nil, windowErr
		}
		window = &w
	}

	trackingNumber := ""
	if dto.TrackingNumber != nil {
		trackingNumber = *dto.TrackingNumber
	}

	labelPayload := ""
	if dto.LabelPayload != nil {
		labelPayload = *dto.LabelPayload
	}

	return shipment.RestoreShipment(
		id,
		orderID,
		sellerID,
		status,
		trackingNumber,
		labelPayload,
		dto.Weight,
		dto.ServiceDescription,
		dto.ShipperAddress,
		window,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
