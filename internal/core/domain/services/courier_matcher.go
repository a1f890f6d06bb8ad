package services

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// MatchRadiusKm is the fixed courier-to-order matching radius. The same
// radius applies at assignment time and when a courier lists nearby orders,
// so the two views of "nearby" never disagree.
const MatchRadiusKm float64 = 5

// CourierMatcher is a domain service that filters a courier pool down to the
// couriers eligible to be offered an order: available, and within
// MatchRadiusKm of the customer (boundary inclusive, haversine distance).
//
// Matching selects candidates only; it never mutates orders or couriers.
// Every matched courier is offered the order, and whoever accepts first wins.
// An empty result is a valid outcome, not an error: the order simply stays
// pending until a courier comes into range.
//
// Example:
//
//	matcher := services.NewCourierMatcher()
//	matched, err := matcher.Match(assignedOrder, couriers)
//	if err != nil {
//	    return err
//	}
//	for _, c := range matched {
//	    // offer the order to c
//	}
type CourierMatcher struct{}

// NewCourierMatcher creates a CourierMatcher.
func NewCourierMatcher() CourierMatcher {
	return CourierMatcher{}
}

// Match returns the couriers eligible for the order: available couriers whose
// last known location lies within MatchRadiusKm of the customer location.
// Order of the result follows the input pool.
func (m CourierMatcher) Match(
	assignedOrder *order.AssignedOrder,
	couriers []*courier.Courier,
) ([]*courier.Courier, error) {
	if err := assignedOrder.Validate(); err != nil {
		return nil, err
	}

	matched := make([]*courier.Courier, 0, len(couriers))
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsAvailable() {
			continue
		}

		within, err := assignedOrder.CustomerLocation().IsWithinRadius(c.Location(), MatchRadiusKm)
		if err != nil {
			return nil, err
		}

		if within {
			matched = append(matched, c)
		}
	}

	return matched, nil
}
