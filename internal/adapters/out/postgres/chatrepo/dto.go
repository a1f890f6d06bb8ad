// Package chatrepo provides data transfer objects and mapping functions for
// chat message persistence. The chat log is append-only, so the repository
// exposes no update or delete operations.
package chatrepo

import (
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/chat"
	"dispatch/internal/core/domain/model/kernel"
)

// MessageDTO represents the database structure for persisting chat messages.
// The assigned order link is indexed because history reads always filter on
// it.
type MessageDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssignedOrderID uuid.UUID `gorm:"type:uuid;index;not null"`
	Sender          int       `gorm:"not null"`
	Text            string    `gorm:"type:text;not null"`
	SentAt          time.Time `gorm:"not null"`
}

// TableName specifies the database table name for chat message entities.
func (MessageDTO) TableName() string {
	return "chat_messages"
}

// fromDomain converts a chat message to its database representation.
func fromDomain(message *chat.Message) MessageDTO {
	return MessageDTO{
		ID:              message.ID().Bytes(),
		AssignedOrderID: message.AssignedOrderID().Bytes(),
		Sender:          int(message.Sender()),
		Text:            message.Text(),
		SentAt:          message.SentAt(),
	}
}

// toDomain converts a database DTO to a chat message.
func toDomain(dto MessageDTO) (*chat.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignedOrderID, err := kernel.UUIDFromBytes(dto.AssignedOrderID[:])
	if err != nil {
		return nil, err
	}

	return chat.NewMessage(id, assignedOrderID, chat.Sender(dto.Sender), dto.Text, dto.SentAt)
}
