package chatrepo

import (
	"context"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/chat"
	"dispatch/internal/core/domain/model/kernel"
)

// GormChatRepository implements ChatRepository using GORM.
type GormChatRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormChatRepository creates a new GORM chat message repository.
func NewGormChatRepository(db *gorm.DB, tracker aggregateTracker) *GormChatRepository {
	return &GormChatRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a message to its order's chat log.
func (r *GormChatRepository) Add(ctx context.Context, message *chat.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto := fromDomain(message)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(message.ID(), message)
	return nil
}

// GetByAssignedOrderID returns the full chat log of an order, oldest message
// first. ID breaks ties between equal timestamps so the ordering is stable.
func (r *GormChatRepository) GetByAssignedOrderID(ctx context.Context, assignedOrderID kernel.UUID) ([]*chat.Message, error) {
	if err := assignedOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("assigned_order_id = ?", assignedOrderID.Bytes()).
		Order("sent_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*chat.Message, 0, len(dtos))
	for _, dto := range dtos {
		message, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}
