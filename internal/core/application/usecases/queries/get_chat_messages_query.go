package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/chat"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetChatMessagesQueryIsNotConstructed = errors.New(
	"GetChatMessagesQuery must be created via NewGetChatMessagesQuery constructor",
)

// GetChatMessagesQuery retrieves the conversation attached to an assigned
// order, oldest message first.
//
// Example:
//
//	query, err := NewGetChatMessagesQuery(assignedOrderID)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	messages, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get chat history: %w", err)
//	}
type GetChatMessagesQuery struct { //nolint:recvcheck //using for validation
	assignedOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetChatMessagesQuery creates a query for an order's chat history.
// Validates that the assignment ID is valid.
func NewGetChatMessagesQuery(assignedOrderID kernel.UUID) (GetChatMessagesQuery, error) {
	if err := assignedOrderID.Validate(); err != nil {
		return GetChatMessagesQuery{}, err
	}

	return GetChatMessagesQuery{
		assignedOrderID: assignedOrderID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetChatMessagesQueryIsNotConstructed if validation fails.
func (q GetChatMessagesQuery) Validate() error {
	return q.guard.Validate(ErrGetChatMessagesQueryIsNotConstructed)
}

// AssignedOrderID returns the delivery assignment identifier.
func (q GetChatMessagesQuery) AssignedOrderID() kernel.UUID {
	return q.assignedOrderID
}

// GetChatMessagesQueryResponse represents one message in an order's
// conversation.
type GetChatMessagesQueryResponse struct {
	ID     kernel.UUID
	Sender chat.Sender
	Text   string
	SentAt time.Time
}
