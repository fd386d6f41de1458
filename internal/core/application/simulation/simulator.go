// Package simulation provides the development-only tracking simulator: a
// fixed vocabulary of carrier status keys used to drive the shipment
// lifecycle without a live carrier sandbox.
//
// The simulator is wired only when the deployment enables it through an
// explicit capability flag; production builds never construct it, so its
// availability is a configuration fact rather than something clients probe
// for.
package simulation

import (
	"fmt"
	"sort"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// TrackingSimulator maps an enumerated set of simulation keys to concrete
// carrier-level statuses. Keys outside the set are rejected.
type TrackingSimulator struct {
	statuses map[string]shipment.Status
}

// NewTrackingSimulator creates a simulator exposing the supported keys.
func NewTrackingSimulator() *TrackingSimulator {
	return &TrackingSimulator{
		statuses: map[string]shipment.Status{
			"shipped":          shipment.Shipped,
			"in_transit":       shipment.InTransit,
			"out_for_delivery": shipment.OutForDelivery,
			"delivered":        shipment.Delivered,
			"exception":        shipment.Exception,
			"returned":         shipment.Returned,
		},
	}
}

// Statuses returns the enumerated simulation keys in sorted order.
func (s *TrackingSimulator) Statuses() []string {
	keys := make([]string, 0, len(s.statuses))
	for key := range s.statuses {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Resolve maps a simulation key to its carrier status.
// Arbitrary strings outside the enumerated set are rejected with a
// validation error and no state change occurs.
func (s *TrackingSimulator) Resolve(key string) (shipment.Status, error) {
	status, ok := s.statuses[key]
	if !ok {
		return shipment.Unknown, errs.NewValueIsInvalidErrorWithCause("simulateStatus",
			fmt.Errorf("%q is not an enumerated simulation status", key))
	}
	return status, nil
}
