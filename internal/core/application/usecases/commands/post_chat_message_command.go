package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/chat"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrPostChatMessageCommandIsNotConstructed = errors.New(
		"PostChatMessageCommand must be created via NewPostChatMessageCommand constructor",
	)
	ErrMessageTextIsRequired = errors.New("message text is required")
)

// PostChatMessageCommand appends a message to the conversation attached to an
// assigned order. Messages are append-only: they are never edited or removed
// afterwards.
//
// Example:
//
//	cmd, err := NewPostChatMessageCommand(assignedOrderID, chat.Customer, "where are you?")
//	if err != nil {
//	    return fmt.Errorf("invalid chat message: %w", err)
//	}
//
//	message, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to post message: %w", err)
//	}
type PostChatMessageCommand struct { //nolint:recvcheck //using for validation
	assignedOrderID kernel.UUID
	sender          chat.Sender
	text            string

	guard guard.ConstructorGuard
}

// NewPostChatMessageCommand creates a command to post a chat message.
// Validates the assignment ID, the sender and that the text is not empty.
func NewPostChatMessageCommand(assignedOrderID kernel.UUID, sender chat.Sender, text string) (PostChatMessageCommand, error) {
	postCommand := PostChatMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		postCommand.setAssignedOrderID(assignedOrderID),
		postCommand.setSender(sender),
		postCommand.setText(text),
	); err != nil {
		return PostChatMessageCommand{}, err
	}

	return postCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPostChatMessageCommandIsNotConstructed if validation fails.
func (c PostChatMessageCommand) Validate() error {
	return c.guard.Validate(ErrPostChatMessageCommandIsNotConstructed)
}

// AssignedOrderID returns the delivery assignment identifier.
func (c PostChatMessageCommand) AssignedOrderID() kernel.UUID {
	return c.assignedOrderID
}

// Sender returns the message author's role.
func (c PostChatMessageCommand) Sender() chat.Sender {
	return c.sender
}

// Text returns the message body.
func (c PostChatMessageCommand) Text() string {
	return c.text
}

func (c *PostChatMessageCommand) setAssignedOrderID(assignedOrderID kernel.UUID) error {
	if err := assignedOrderID.Validate(); err != nil {
		return err
	}

	c.assignedOrderID = assignedOrderID
	return nil
}

func (c *PostChatMessageCommand) setSender(sender chat.Sender) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *PostChatMessageCommand) setText(text string) error {
	if text == "" {
		return ErrMessageTextIsRequired
	}

	c.text = text
	return nil
}
