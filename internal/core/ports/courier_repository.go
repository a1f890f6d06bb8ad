package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier entities.
// The matching path only reads couriers; writes come from registration and
// from the courier's own client updating location and availability.
type CourierRepository interface {
	// Add persists a newly registered courier.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllAvailable retrieves every courier currently flagged available.
	// Distance filtering happens in the domain, not in the store.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}
