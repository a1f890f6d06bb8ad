// Package ports defines the contracts between the core and its adapters:
// repositories and the unit of work on the persistence side, plus the
// geocoding and notification collaborators the engine consumes. The
// interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for AssignedOrder aggregates.
type OrderRepository interface {
	// Add persists a new delivery record. Exactly one record may exist per
	// commerce order; adding a second for the same OrderID fails.
	Add(ctx context.Context, aggregate *order.AssignedOrder) error

	// Update persists changes to an existing delivery record.
	Update(ctx context.Context, aggregate *order.AssignedOrder) error

	// Get retrieves a delivery record by its own identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.AssignedOrder, error)

	// GetByOrderID retrieves a delivery record by its commerce order link.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*order.AssignedOrder, error)

	// GetAllPending retrieves every record still waiting for a courier.
	GetAllPending(ctx context.Context) ([]*order.AssignedOrder, error)

	// AcceptPending atomically claims a pending order for a courier.
	//
	// The transition is a single conditional update guarded by the pending
	// status, not a read-then-write, so two racing couriers produce at most
	// one winner. The loser receives order.ErrOrderAlreadyTaken; an unknown
	// id yields errs.ErrObjectNotFound.
	AcceptPending(ctx context.Context, id kernel.UUID, courierID kernel.UUID) error
}
