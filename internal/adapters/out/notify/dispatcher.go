package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

const channelTimeout = 5 * time.Second

// Dispatcher fans an assignment offer out to a courier over the messenger
// and email channels. Both channels are best-effort: a failed send is logged
// and never reported back, and one channel's failure does not affect the
// other.
type Dispatcher struct {
	geocoder  ports.Geocoder
	messenger ports.Messenger
	mailer    ports.Mailer
	logger    *slog.Logger
}

// NewDispatcher creates an assignment notifier. Either channel may be nil
// when the deployment does not configure it.
func NewDispatcher(
	geocoder ports.Geocoder,
	messenger ports.Messenger,
	mailer ports.Mailer,
	logger *slog.Logger,
) Dispatcher {
	return Dispatcher{
		geocoder:  geocoder,
		messenger: messenger,
		mailer:    mailer,
		logger:    logger,
	}
}

// NotifyAssignment offers the order to the courier over every configured
// channel. The assignment is already persisted when this runs, so nothing
// here can fail the caller.
func (d Dispatcher) NotifyAssignment(
	ctx context.Context, assignee *courier.Courier, assignedOrder *order.AssignedOrder,
) {
	ctx, cancel := context.WithTimeout(ctx, channelTimeout)
	defer cancel()

	text := d.composeOffer(ctx, assignedOrder)

	if d.messenger != nil && assignee.ChatID() != 0 {
		if err := d.messenger.SendText(ctx, assignee.ChatID(), text); err != nil {
			d.logger.Warn("messenger notification failed",
				"courierID", assignee.ID().String(),
				"assignedOrderID", assignedOrder.ID().String(),
				"error", err)
		}
	}

	if d.mailer != nil && assignee.Email() != "" {
		if err := d.mailer.Send(ctx, assignee.Email(), "New delivery order available", text); err != nil {
			d.logger.Warn("email notification failed",
				"courierID", assignee.ID().String(),
				"assignedOrderID", assignedOrder.ID().String(),
				"error", err)
		}
	}
}

// composeOffer builds the fixed-template offer text. A failed reverse
// geocode falls back to raw coordinates rather than blocking the offer.
func (d Dispatcher) composeOffer(ctx context.Context, assignedOrder *order.AssignedOrder) string {
	location := assignedOrder.CustomerLocation()

	address, err := d.geocoder.Reverse(ctx, location)
	if err != nil {
		d.logger.Warn("reverse geocode for notification failed",
			"assignedOrderID", assignedOrder.ID().String(),
			"error", err)
		address = fmt.Sprintf("(%.5f, %.5f)", location.Lat(), location.Lng())
	}

	return fmt.Sprintf(
		"Order %s is up for delivery at %s. Open the app to accept it.",
		assignedOrder.OrderID().String(), address)
}
