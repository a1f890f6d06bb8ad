package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// Messenger sends a text to a courier's linked messenger chat.
// This is the chat-app leg of the notification fan-out.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

// Mailer sends a plain-text email. This is the email leg of the
// notification fan-out.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

// AssignmentNotifier tells a courier that a nearby order is up for grabs.
//
// Notification is strictly fire-and-forget: by the time it runs the
// assignment has already been persisted, so implementations log channel
// failures and never report them back. One courier's failed notification
// must not affect the others.
type AssignmentNotifier interface {
	NotifyAssignment(ctx context.Context, courier *courier.Courier, assignedOrder *order.AssignedOrder)
}
