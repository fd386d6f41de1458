package services

import (
	"sort"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"
)

// ErrNoShippableItems is returned when an order contains no approved items.
var ErrNoShippableItems = errs.NewValueIsInvalidError("order has no approved items to ship")

// SellerGroup is one seller's share of an order: the approved items plus
// their aggregate weight and monetary total. Each group becomes one
// shipment request.
type SellerGroup struct {
	SellerID kernel.UUID
	Weight   float64
	Total    float64
	Items    []order.OrderItem
}

// OrderItemAggregator groups an order's approved line items by seller.
// It is a pure read-and-transform service with no side effects.
type OrderItemAggregator struct{}

// NewOrderItemAggregator creates an OrderItemAggregator.
func NewOrderItemAggregator() OrderItemAggregator {
	return OrderItemAggregator{}
}

// Aggregate filters items to approved status, groups them by seller, and
// computes per-seller weight and total. Groups are returned sorted by
// seller id for deterministic output.
//
// Returns ErrNoShippableItems if no item is approved.
func (a OrderItemAggregator) Aggregate(items []order.OrderItem) ([]SellerGroup, error) {
	groups := make(map[kernel.UUID]*SellerGroup)

	for _, item := range items {
		if !item.IsShippable() {
			continue
		}

		group, ok := groups[item.SellerID]
		if !ok {
			group = &SellerGroup{SellerID: item.SellerID}
			groups[item.SellerID] = group
		}

		group.Items = append(group.Items, item)
		group.Weight += item.Weight()
		group.Total += item.ItemTotal
	}

	if len(groups) == 0 {
		return nil, ErrNoShippableItems
	}

	result := make([]SellerGroup, 0, len(groups))
	for _, group := range groups {
		result = append(result, *group)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].SellerID.String() < result[j].SellerID.String()
	})

	return result, nil
}
