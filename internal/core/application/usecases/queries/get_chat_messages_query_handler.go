package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/chat"
	"dispatch/internal/core/domain/model/kernel"
)

// GetChatMessagesQueryHandler retrieves an order's conversation from the
// database in the order the messages were posted.
type GetChatMessagesQueryHandler struct {
	db *gorm.DB
}

// NewGetChatMessagesQueryHandler creates a handler for chat history queries.
// Requires a GORM database connection for query execution.
func NewGetChatMessagesQueryHandler(db *gorm.DB) GetChatMessagesQueryHandler {
	return GetChatMessagesQueryHandler{db: db}
}

// Handle executes the query.
// Messages are sorted by sent time ascending, id as a tiebreaker so equal
// timestamps still produce a stable ordering. An order with no conversation
// yields an empty slice, not an error.
func (h GetChatMessagesQueryHandler) Handle(
	ctx context.Context,
	query GetChatMessagesQuery,
) ([]GetChatMessagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	messages := make([]GetChatMessagesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender,
			text,
			sent_at
		FROM chat_messages
		WHERE assigned_order_id = ?
		ORDER BY sent_at, id
	`, query.AssignedOrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var sender int
		var text string
		var sentAt time.Time

		if err = rows.Scan(&id, &sender, &text, &sentAt); err != nil {
			return nil, err
		}

		messageID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		messages = append(messages, GetChatMessagesQueryResponse{
			ID:     messageID,
			Sender: chat.Sender(sender),
			Text:   text,
			SentAt: sentAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
