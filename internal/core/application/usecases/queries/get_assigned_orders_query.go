package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery retrieves a courier's active workload: the orders
// they have accepted and not yet delivered.
type GetAssignedOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates a query for a courier's active orders.
// Validates that the courier ID is valid.
func NewGetAssignedOrdersQuery(courierID kernel.UUID) (GetAssignedOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetAssignedOrdersQuery{}, err
	}

	return GetAssignedOrdersQuery{
		courierID: courierID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignedOrdersQueryIsNotConstructed if validation fails.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// CourierID returns the requesting courier's identifier.
func (q GetAssignedOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetAssignedOrdersQueryResponse represents one order in a courier's active
// workload, with its current lifecycle status.
type GetAssignedOrdersQueryResponse struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	CustomerLocation kernel.GeoPoint
	Status           order.Status
}
