package ports

import (
	"context"

	"dispatch/internal/core/domain/model/chat"
	"dispatch/internal/core/domain/model/kernel"
)

// ChatRepository defines the persistence contract for order chat messages.
// The log is append-only; messages are never updated or deleted.
type ChatRepository interface {
	// Add appends a message to its order's chat log.
	Add(ctx context.Context, message *chat.Message) error

	// GetByAssignedOrderID returns the full chat log of an order in ascending
	// timestamp order. Polling clients replay the whole log each time; there
	// is no cursor.
	GetByAssignedOrderID(ctx context.Context, assignedOrderID kernel.UUID) ([]*chat.Message, error)
}
