package chat

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrMessageIsNotConstructed is returned when a Message was not created via NewMessage.
	ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

	// ErrTextIsRequired is returned when attempting to post an empty message.
	ErrTextIsRequired = errs.NewValueIsRequiredError("message")

	// ErrSentAtIsRequired is returned when the message carries no timestamp.
	ErrSentAtIsRequired = errs.NewValueIsRequiredError("sentAt")
)

// Message is one entry in an order's chat log. Messages are append-only,
// scoped to a single assigned order, and listed in ascending timestamp order.
// The chat does not gate the delivery state machine; it only shares the
// order's lifecycle boundary.
type Message struct {
	// id uniquely identifies the message
	id kernel.UUID

	// assignedOrderID scopes the message to one delivery record
	assignedOrderID kernel.UUID

	// sender is the participant who wrote the message
	sender Sender

	// text is the message body (non-empty)
	text string

	// sentAt orders the message within the conversation
	sentAt time.Time

	// isConstructed ensures the message was created via NewMessage
	isConstructed bool
}

// NewMessage creates a chat message for an assigned order.
// The sender must be a valid participant, the text non-empty, and sentAt
// non-zero. The same constructor serves creation and restoration from
// persistence: a message has no mutable state.
func NewMessage(
	id kernel.UUID,
	assignedOrderID kernel.UUID,
	sender Sender,
	text string,
	sentAt time.Time,
) (*Message, error) {
	message := &Message{
		isConstructed: true,
	}

	if err := errors.Join(
		message.setID(id),
		message.setAssignedOrderID(assignedOrderID),
		message.setSender(sender),
		message.setText(text),
		message.setSentAt(sentAt),
	); err != nil {
		return nil, err
	}

	return message, nil
}

// Validate ensures the Message was created through NewMessage.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message's unique identifier.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// AssignedOrderID returns the delivery record this message belongs to.
func (m *Message) AssignedOrderID() kernel.UUID {
	return m.assignedOrderID
}

// Sender returns the participant who wrote the message.
func (m *Message) Sender() Sender {
	return m.sender
}

// Text returns the message body.
func (m *Message) Text() string {
	return m.text
}

// SentAt returns the message timestamp.
func (m *Message) SentAt() time.Time {
	return m.sentAt
}

func (m *Message) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Message) setAssignedOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.assignedOrderID = id
	return nil
}

func (m *Message) setSender(sender Sender) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	m.sender = sender
	return nil
}

func (m *Message) setText(text string) error {
	if text == "" {
		return ErrTextIsRequired
	}
	m.text = text
	return nil
}

func (m *Message) setSentAt(sentAt time.Time) error {
	if sentAt.IsZero() {
		return ErrSentAtIsRequired
	}
	m.sentAt = sentAt
	return nil
}
