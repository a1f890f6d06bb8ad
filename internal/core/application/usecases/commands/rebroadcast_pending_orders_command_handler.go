package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// RebroadcastPendingOrdersCommandHandler re-runs matching for every pending
// assignment against the current courier pool and re-sends offers. Reads run
// in one transaction; offers go out after it ends, the same ordering the
// initial assignment uses.
type RebroadcastPendingOrdersCommandHandler struct {
	uowFactory UoWFactory
	matcher    services.CourierMatcher
	notifier   ports.AssignmentNotifier
	logger     *slog.Logger
}

// NewRebroadcastPendingOrdersCommandHandler creates a handler for pending
// order re-offers. Requires a UoWFactory for reading orders and couriers and
// a notifier for sending the offers.
func NewRebroadcastPendingOrdersCommandHandler(
	uowFactory UoWFactory,
	matcher services.CourierMatcher,
	notifier ports.AssignmentNotifier,
	logger *slog.Logger,
) RebroadcastPendingOrdersCommandHandler {
	return RebroadcastPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		matcher:    matcher,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle re-offers every pending assignment to the couriers in range.
// Orders with no courier in range stay pending and are retried on the next
// run.
func (h RebroadcastPendingOrdersCommandHandler) Handle(ctx context.Context, command RebroadcastPendingOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pendingOrders, err := uow.OrderRepository().GetAllPending(ctx)
	if err != nil {
		return err
	}

	couriers, err := uow.CourierRepository().GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, pendingOrder := range pendingOrders {
		matched, err := h.matcher.Match(pendingOrder, couriers)
		if err != nil {
			return err
		}

		for _, c := range matched {
			h.notifier.NotifyAssignment(ctx, c, pendingOrder)
		}

		if len(matched) > 0 {
			h.logger.Info("re-offered pending order",
				slog.String("assignedOrderID", pendingOrder.ID().String()),
				slog.Int("couriers", len(matched)))
		}
	}

	return nil
}
