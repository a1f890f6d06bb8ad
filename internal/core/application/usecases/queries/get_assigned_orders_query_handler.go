package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// GetAssignedOrdersQueryHandler retrieves the orders a courier is currently
// working: accepted and pickedUp, excluding delivered ones.
type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for courier workload
// queries. Requires a GORM database connection for query execution.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle executes the query.
// Results are sorted by order ID for consistent output; an empty result means
// the courier has nothing in flight.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]GetAssignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAssignedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			location_lat,
			location_lng,
			status
		FROM assigned_orders
		WHERE courier_id = ? AND status IN (?, ?)
		ORDER BY id
	`, query.CourierID().Bytes(), order.Accepted, order.PickedUp).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID uuid.UUID
		var lat, lng float64
		var status int

		if err = rows.Scan(&id, &orderID, &lat, &lng, &status); err != nil {
			return nil, err
		}

		assignedOrderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		commerceOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		customerLocation, locErr := kernel.NewGeoPoint(lat, lng)
		if locErr != nil {
			return nil, locErr
		}

		orders = append(orders, GetAssignedOrdersQueryResponse{
			ID:               assignedOrderID,
			OrderID:          commerceOrderID,
			CustomerLocation: customerLocation,
			Status:           order.Status(status),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
