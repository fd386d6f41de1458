package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions, so a shipment can
// only move along the edges of the carrier lifecycle graph.
//
// State transitions:
//
//	Pending ──> Created <──> PickupScheduled ──> Shipped ──> InTransit ──> OutForDelivery ──> Delivered
//	               │                │               │            │               │                │
//	               └── Cancelled ───┘               ├── Exception┼───────────────┤                │
//	                   (void)                       └────────── Returned ────────┴────────────────┘
//
// Cancelled, Delivered, and Returned are terminal: no outgoing edges.
// Exception has no outgoing edges either but is not terminal; it marks a
// shipment needing manual carrier follow-up.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the shipment exists locally but the
	// carrier has not yet issued a tracking number or label.
	Pending

	// Created means the carrier processed the shipment and assigned a
	// tracking number and label. The shipment is eligible for pickup
	// scheduling and voiding.
	Created

	// PickupScheduled means a carrier pickup visit is booked for the
	// shipment's pickup window.
	PickupScheduled

	// Shipped means the carrier scanned the package at collection.
	Shipped

	// InTransit means the package is moving through the carrier network.
	InTransit

	// OutForDelivery means the package is on the final delivery vehicle.
	OutForDelivery

	// Delivered means the package reached its destination. Terminal.
	Delivered

	// Exception means the carrier reported an anomaly (damage, address
	// problem, customs hold). Requires manual follow-up.
	Exception

	// Cancelled means the shipment was voided before pickup. Terminal.
	Cancelled

	// Returned means the carrier sent the package back. Terminal.
	Returned
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "unknown",
		Pending:         "pending",
		Created:         "created",
		PickupScheduled: "pickup_scheduled",
		Shipped:         "shipped",
		InTransit:       "in_transit",
		OutForDelivery:  "out_for_delivery",
		Delivered:       "delivered",
		Exception:       "exception",
		Cancelled:       "cancelled",
		Returned:        "returned",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "pending",
		Created:         "created",
		PickupScheduled: "pickup_scheduled",
		Shipped:         "shipped",
		InTransit:       "in_transit",
		OutForDelivery:  "out_for_delivery",
		Delivered:       "delivered",
		Exception:       "exception",
		Cancelled:       "cancelled",
		Returned:        "returned",
	}
}

// trackingTransitions enumerates the edges driven by carrier tracking
// updates. Every other tracking-driven status change is rejected.
func trackingTransitions() map[Status][]Status {
	return map[Status][]Status{
		PickupScheduled: {Shipped},
		Shipped:         {InTransit, Exception, Returned},
		InTransit:       {OutForDelivery, Exception, Returned},
		OutForDelivery:  {Delivered, Exception, Returned},
		Delivered:       {Returned},
	}
}

// StatusFromString parses a status from its snake_case representation.
// Returns an error for strings outside the enumerated set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is the end of the shipment's life.
// Terminal shipments are retained for audit and never mutated again.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Delivered || s == Returned
}

// IsActive reports whether the status counts against the one-active-shipment
// rule for an (order, seller) pair. Every valid non-terminal status is active.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// Process transitions the status to Created once the carrier has issued a
// tracking number and label.
//
// Valid transitions:
//   - Pending -> Created
func (s Status) Process() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), Created.String())
	}

	return Created, nil
}

// SchedulePickup transitions the status to PickupScheduled.
//
// Valid transitions:
//   - Created -> PickupScheduled
func (s Status) SchedulePickup() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidTransitionError(s.String(), PickupScheduled.String())
	}

	return PickupScheduled, nil
}

// CancelPickup reverses pickup scheduling, returning the status to Created.
//
// Valid transitions:
//   - PickupScheduled -> Created
func (s Status) CancelPickup() (Status, error) {
	if s != PickupScheduled {
		return 0, errs.NewInvalidTransitionError(s.String(), Created.String())
	}

	return Created, nil
}

// Void transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//   - PickupScheduled -> Cancelled
//
// Whether the shipment is still inside the carrier's void window is a
// policy decision made before this transition is attempted.
func (s Status) Void() (Status, error) {
	if s != Created && s != PickupScheduled {
		return 0, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}

	return Cancelled, nil
}

// Advance applies a carrier tracking update, moving the status along one of
// the tracking edges:
//
//	PickupScheduled -> Shipped
//	Shipped         -> InTransit | Exception | Returned
//	InTransit       -> OutForDelivery | Exception | Returned
//	OutForDelivery  -> Delivered | Exception | Returned
//	Delivered       -> Returned
//
// Any other (from, to) pair returns an InvalidTransitionError and the
// status is unchanged.
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	for _, allowed := range trackingTransitions()[s] {
		if target == allowed {
			return target, nil
		}
	}

	return 0, errs.NewInvalidTransitionError(s.String(), target.String())
}
