package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/chat"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

func newPostChatHandler(store *memoryStore) commands.PostChatMessageCommandHandler {
	return commands.NewPostChatMessageCommandHandler(fakeChatUoWFactory{store: store})
}

func TestPostChatMessageCommandHandler_AppendsMessage(t *testing.T) {
	store := newMemoryStore()
	pending := addPendingOrder(t, store)
	handler := newPostChatHandler(store)

	command, err := commands.NewPostChatMessageCommand(pending.ID(), chat.Customer, "where are you?")
	require.NoError(t, err)

	message, err := handler.Handle(context.Background(), command)
	require.NoError(t, err)

	assert.True(t, message.AssignedOrderID().IsEqual(pending.ID()))
	assert.Equal(t, chat.Customer, message.Sender())
	assert.Equal(t, "where are you?", message.Text())
	assert.False(t, message.SentAt().IsZero())

	messages, err := fakeChatRepository{store: store}.GetByAssignedOrderID(context.Background(), pending.ID())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].ID().IsEqual(message.ID()))
}

func TestPostChatMessageCommandHandler_UnknownOrder(t *testing.T) {
	store := newMemoryStore()
	handler := newPostChatHandler(store)

	command, err := commands.NewPostChatMessageCommand(kernel.NewUUID(), chat.Courier, "on my way")
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), command)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewPostChatMessageCommand_Validation(t *testing.T) {
	_, err := commands.NewPostChatMessageCommand(kernel.NewUUID(), chat.Customer, "")
	assert.ErrorIs(t, err, commands.ErrMessageTextIsRequired)

	_, err = commands.NewPostChatMessageCommand(kernel.NewUUID(), chat.UnknownSender, "hello")
	assert.Error(t, err)

	_, err = commands.NewPostChatMessageCommand(kernel.UUID{}, chat.Customer, "hello")
	assert.Error(t, err)
}
