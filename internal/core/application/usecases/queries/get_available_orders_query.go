package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves the pending assignments a courier can
// accept: orders with no courier yet whose customer lies within matching
// range of the courier's last reported position.
//
// Example:
//
//	query, err := NewGetAvailableOrdersQuery(courierID)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get available orders: %w", err)
//	}
//	fmt.Printf("%d orders up for grabs\n", len(orders))
type GetAvailableOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for a courier's order feed.
// Validates that the courier ID is valid.
func NewGetAvailableOrdersQuery(courierID kernel.UUID) (GetAvailableOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetAvailableOrdersQuery{}, err
	}

	return GetAvailableOrdersQuery{
		courierID: courierID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableOrdersQueryIsNotConstructed if validation fails.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// CourierID returns the requesting courier's identifier.
func (q GetAvailableOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetAvailableOrdersQueryResponse represents one pending assignment in a
// courier's feed, with the distance from the courier to the customer.
type GetAvailableOrdersQueryResponse struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	CustomerLocation kernel.GeoPoint
	DistanceKm       float64
}
