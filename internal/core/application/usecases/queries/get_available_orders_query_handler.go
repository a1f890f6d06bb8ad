package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// GetAvailableOrdersQueryHandler builds a courier's feed of acceptable
// orders. Pending rows come straight from the database; the radius filter
// runs on kernel.GeoPoint so that the feed and the notification matcher never
// disagree about what "nearby" means.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for courier order
// feeds. Requires a GORM database connection for query execution.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ErrObjectNotFound for an unknown courier. Results keep the
// stable id ordering of the underlying scan.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	courierLocation, err := h.courierLocation(ctx, query.CourierID())
	if err != nil {
		return nil, err
	}

	orders := make([]GetAvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			location_lat,
			location_lng
		FROM assigned_orders
		WHERE status = ?
		ORDER BY id
	`, order.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID uuid.UUID
		var lat, lng float64

		if err = rows.Scan(&id, &orderID, &lat, &lng); err != nil {
			return nil, err
		}

		customerLocation, locErr := kernel.NewGeoPoint(lat, lng)
		if locErr != nil {
			return nil, locErr
		}

		within, radiusErr := courierLocation.IsWithinRadius(customerLocation, services.MatchRadiusKm)
		if radiusErr != nil {
			return nil, radiusErr
		}
		if !within {
			continue
		}

		assignedOrderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		commerceOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		distance, distErr := courierLocation.DistanceKm(customerLocation)
		if distErr != nil {
			return nil, distErr
		}

		orders = append(orders, GetAvailableOrdersQueryResponse{
			ID:               assignedOrderID,
			OrderID:          commerceOrderID,
			CustomerLocation: customerLocation,
			DistanceKm:       distance,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetAvailableOrdersQueryHandler) courierLocation(ctx context.Context, courierID kernel.UUID) (kernel.GeoPoint, error) {
	var lat, lng float64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			location_lat,
			location_lng
		FROM couriers
		WHERE id = ?
	`, courierID.Bytes()).Row()

	if err := row.Scan(&lat, &lng); err != nil {
		return kernel.GeoPoint{}, errs.NewObjectNotFoundErrorWithCause("courierID", courierID, err)
	}

	return kernel.NewGeoPoint(lat, lng)
}
