package services

import (
	"time"

	"shipping/internal/core/domain/model/shipment"
)

// VoidWindow is how long after creation a shipment remains voidable,
// matching the carrier-imposed void window.
const VoidWindow = 24 * time.Hour

// Void ineligibility reasons. Each disqualifying condition maps to its own
// reason so callers can render specific guidance; the most specific
// condition wins when several apply.
const (
	ReasonAlreadyDelivered  = "already delivered"
	ReasonAlreadyCancelled  = "already cancelled"
	ReasonAlreadyReturned   = "already returned"
	ReasonAlreadyShipped    = "already shipped"
	ReasonInTransit         = "already in transit"
	ReasonOutForDelivery    = "already out for delivery"
	ReasonNotYetProcessed   = "not yet processed"
	ReasonVoidPeriodExpired = "void period expired"
)

// VoidDecision is the outcome of a void eligibility check.
// When Eligible is false, Reason names the disqualifying condition.
type VoidDecision struct {
	Eligible bool
	Reason   string
}

// VoidEligibilityPolicy decides whether a shipment may still be voided.
// It is pure: the caller supplies the clock.
type VoidEligibilityPolicy struct{}

// NewVoidEligibilityPolicy creates a VoidEligibilityPolicy.
func NewVoidEligibilityPolicy() VoidEligibilityPolicy {
	return VoidEligibilityPolicy{}
}

// CanVoid reports whether the shipment may be voided at time now.
//
// A shipment is eligible iff its status is created or pickup_scheduled and
// it is younger than VoidWindow. Disqualifier precedence, most specific
// first: terminal status, in-flight status, not yet processed, expired
// window.
func (p VoidEligibilityPolicy) CanVoid(s *shipment.Shipment, now time.Time) VoidDecision {
	ineligible := func(reason string) VoidDecision {
		return VoidDecision{Eligible: false, Reason: reason}
	}

	switch s.Status() {
	case shipment.Delivered:
		return ineligible(ReasonAlreadyDelivered)
	case shipment.Cancelled:
		return ineligible(ReasonAlreadyCancelled)
	case shipment.Returned:
		return ineligible(ReasonAlreadyReturned)
	case shipment.Shipped:
		return ineligible(ReasonAlreadyShipped)
	case shipment.InTransit:
		return ineligible(ReasonInTransit)
	case shipment.OutForDelivery:
		return ineligible(ReasonOutForDelivery)
	case shipment.Exception:
		return ineligible(ReasonAlreadyShipped)
	case shipment.Pending:
		return ineligible(ReasonNotYetProcessed)
	}

	if s.Age(now) >= VoidWindow {
		return ineligible(ReasonVoidPeriodExpired)
	}

	return VoidDecision{Eligible: true}
}
