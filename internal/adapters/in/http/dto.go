package http

import (
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
)

// envelope is the uniform response wrapper. success reports whether the
// operation took effect; message carries human-readable context; data holds
// the operation-specific payload, if any.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type createdShipmentResponse struct {
	ShipmentID     string  `json:"shipmentId"`
	SellerID       string  `json:"sellerId"`
	Status         string  `json:"status"`
	TrackingNumber string  `json:"trackingNumber"`
	Weight         float64 `json:"weight"`
	Total          float64 `json:"total"`
}

func toCreatedShipmentResponses(created []commands.CreatedShipment) []createdShipmentResponse {
	responses := make([]createdShipmentResponse, len(created))
	for i, c := range created {
		responses[i] = createdShipmentResponse{
			ShipmentID:     c.ShipmentID.String(),
			SellerID:       c.SellerID.String(),
			Status:         c.Status.String(),
			TrackingNumber: c.TrackingNumber,
			Weight:         c.Weight,
			Total:          c.Total,
		}
	}
	return responses
}

type processedShipmentResponse struct {
	TrackingNumber string `json:"trackingNumber"`
	LabelPayload   string `json:"labelPayload"`
}

type schedulePickupRequest struct {
	PickupDate string `json:"pickupDate"`
	ReadyTime  string `json:"readyTime"`
	CloseTime  string `json:"closeTime"`
}

type voidDecisionResponse struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

type trackShipmentRequest struct {
	SimulateStatus string `json:"simulateStatus"`
}

type trackedShipmentResponse struct {
	ShipmentID     string `json:"shipmentId"`
	Status         string `json:"status"`
	TrackingNumber string `json:"trackingNumber"`
	Description    string `json:"description"`
}

type sellerShipmentResponse struct {
	ShipmentID      string  `json:"shipmentId"`
	OrderID         string  `json:"orderId"`
	SellerID        string  `json:"sellerId"`
	Status          string  `json:"status"`
	TrackingNumber  string  `json:"trackingNumber"`
	Weight          float64 `json:"weight"`
	PickupDate      string  `json:"pickupDate,omitempty"`
	PickupReadyTime string  `json:"pickupReadyTime,omitempty"`
	PickupCloseTime string  `json:"pickupCloseTime,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

func toSellerShipmentResponses(shipments []queries.SellerShipmentResponse) []sellerShipmentResponse {
	responses := make([]sellerShipmentResponse, len(shipments))
	for i, s := range shipments {
		responses[i] = sellerShipmentResponse{
			ShipmentID:      s.ID.String(),
			OrderID:         s.OrderID.String(),
			SellerID:        s.SellerID.String(),
			Status:          s.Status,
			TrackingNumber:  s.TrackingNumber,
			Weight:          s.Weight,
			PickupDate:      s.PickupDate,
			PickupReadyTime: s.PickupReadyTime,
			PickupCloseTime: s.PickupCloseTime,
			CreatedAt:       s.CreatedAt.UTC().Format(timeLayout),
			UpdatedAt:       s.UpdatedAt.UTC().Format(timeLayout),
		}
	}
	return responses
}

const timeLayout = "2006-01-02T15:04:05Z07:00"
