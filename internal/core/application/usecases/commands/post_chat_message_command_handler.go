package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/chat"
	"dispatch/internal/core/domain/model/kernel"
)

// PostChatMessageCommandHandler appends messages to an order's conversation.
// The assignment must exist; the message timestamp is assigned server-side at
// posting time, which keeps the per-order log in arrival order.
type PostChatMessageCommandHandler struct {
	uowFactory ChatUoWFactory
}

// NewPostChatMessageCommandHandler creates a handler for chat posting.
// Requires a ChatUoWFactory for coordinating the order and chat repositories.
func NewPostChatMessageCommandHandler(uowFactory ChatUoWFactory) PostChatMessageCommandHandler {
	return PostChatMessageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the chat post.
// Returns errs.ErrObjectNotFound when the assignment does not exist.
func (h PostChatMessageCommandHandler) Handle(ctx context.Context, command PostChatMessageCommand) (*chat.Message, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, command.AssignedOrderID()); err != nil {
		return nil, err
	}

	message, err := chat.NewMessage(
		kernel.NewUUID(),
		command.AssignedOrderID(),
		command.Sender(),
		command.Text(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ChatRepository().Add(ctx, message); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return message, nil
}
