package shipment

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment. This ensures all shipments
// are properly validated.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the aggregate root of the shipment lifecycle: one carrier
// package for one seller's approved items within one order.
//
// Shipment follows these invariants:
//   - id, orderID, and sellerID are valid and immutable after creation
//   - weight is positive and shipperAddress is non-empty
//   - trackingNumber and labelPayload are assigned exactly once, when the
//     carrier processes the shipment, and never change afterwards
//   - the pickup window is set only through SchedulePickup
//   - status moves only along the edges enumerated on Status; a rejected
//     transition leaves the aggregate completely untouched
//
// All fields are private; state changes go through the mutating methods,
// which delegate edge validation to Status.
type Shipment struct {
	id       kernel.UUID
	orderID  kernel.UUID
	sellerID kernel.UUID

	status Status

	// trackingNumber and labelPayload are carrier-issued during processing
	// and immutable thereafter. labelPayload is opaque base64 label imagery.
	trackingNumber string
	labelPayload   string

	weight             float64
	serviceDescription string
	shipperAddress     string

	// pickupWindow is set while the shipment is (or was) pickup_scheduled.
	pickupWindow *kernel.PickupWindow

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewShipment creates a pending shipment for one seller's share of an order.
// The shipment has no tracking number or label yet; those are attached when
// the carrier processes it.
//
// Parameters:
//   - id, orderID, sellerID: valid identifiers
//   - weight: aggregate package weight, must be positive
//   - serviceDescription: carrier service level text
//   - shipperAddress: origin address, required
func NewShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	sellerID kernel.UUID,
	weight float64,
	serviceDescription string,
	shipperAddress string,
) (*Shipment, error) {
	now := time.Now().UTC()
	s := &Shipment{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setSellerID(sellerID),
		s.setWeight(weight),
		s.setShipperAddress(shipperAddress),
	); err != nil {
		return nil, err
	}

	s.serviceDescription = serviceDescription
	return s, nil
}

// RestoreShipment rebuilds a shipment aggregate from persistence.
// All invariants are re-validated; the status must be a valid lifecycle
// state and label fields must be consistent with it.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	sellerID kernel.UUID,
	status Status,
	trackingNumber string,
	labelPayload string,
	weight float64,
	serviceDescription string,
	shipperAddress string,
	pickupWindow *kernel.PickupWindow,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	s := &Shipment{
		status:             status,
		trackingNumber:     trackingNumber,
		labelPayload:       labelPayload,
		serviceDescription: serviceDescription,
		pickupWindow:       pickupWindow,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		isConstructed:      true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setSellerID(sellerID),
		s.setWeight(weight),
		s.setShipperAddress(shipperAddress),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
// Returns ErrShipmentIsNotConstructed for zero-value instances.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the order this shipment belongs to.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// SellerID returns the identifier of the seller fulfilling this shipment.
func (s *Shipment) SellerID() kernel.UUID {
	return s.sellerID
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// TrackingNumber returns the carrier tracking number, or "" before processing.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// LabelPayload returns the opaque carrier label payload, or "" before processing.
func (s *Shipment) LabelPayload() string {
	return s.labelPayload
}

// Weight returns the aggregate package weight.
func (s *Shipment) Weight() float64 {
	return s.weight
}

// ServiceDescription returns the carrier service level text.
func (s *Shipment) ServiceDescription() string {
	return s.serviceDescription
}

// ShipperAddress returns the origin address.
func (s *Shipment) ShipperAddress() string {
	return s.shipperAddress
}

// PickupWindow returns the scheduled pickup window.
// Returns nil if a pickup was never scheduled.
func (s *Shipment) PickupWindow() *kernel.PickupWindow {
	return s.pickupWindow
}

// CreatedAt returns the creation timestamp. It anchors the void window.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// Age returns how long the shipment has existed relative to now.
func (s *Shipment) Age(now time.Time) time.Duration {
	return now.Sub(s.createdAt)
}

// AttachLabel records the carrier-issued tracking number and label payload,
// moving the shipment from Pending to Created.
//
// Both values are assigned exactly once; calling AttachLabel on a shipment
// that already carries a label fails with InvalidTransition and changes
// nothing, so carrier labels are never silently reissued.
func (s *Shipment) AttachLabel(trackingNumber, labelPayload string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if labelPayload == "" {
		return errs.NewValueIsRequiredError("labelPayload")
	}

	newStatus, err := s.status.Process()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.trackingNumber = trackingNumber
	s.labelPayload = labelPayload
	s.touch()
	return nil
}

// SchedulePickup books a carrier pickup for the given window, moving the
// shipment from Created to PickupScheduled. The window must already have
// passed its structural and schedulability validation.
func (s *Shipment) SchedulePickup(window kernel.PickupWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.SchedulePickup()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.pickupWindow = &window
	s.touch()
	return nil
}

// CancelPickup reverses a scheduled pickup, returning the shipment to
// Created. The pickup window is retained for history.
func (s *Shipment) CancelPickup() error {
	newStatus, err := s.status.CancelPickup()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch()
	return nil
}

// Void cancels the shipment before pickup. Eligibility (status and void
// window age) is decided by the void policy before this is called; Void
// itself only enforces the structural edge.
func (s *Shipment) Void() error {
	newStatus, err := s.status.Void()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch()
	return nil
}

// ApplyTracking advances the shipment along a carrier tracking edge.
// A carrier status equal to the current one is a no-op; any pair outside
// the tracking table fails with InvalidTransition and changes nothing.
func (s *Shipment) ApplyTracking(target Status) error {
	if target == s.status {
		return nil
	}

	newStatus, err := s.status.Advance(target)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch()
	return nil
}

func (s *Shipment) touch() {
	s.updatedAt = time.Now().UTC()
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.orderID = id
	return nil
}

func (s *Shipment) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.sellerID = id
	return nil
}

func (s *Shipment) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%f is not greater than 0", weight))
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setShipperAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("shipperAddress")
	}
	s.shipperAddress = address
	return nil
}
