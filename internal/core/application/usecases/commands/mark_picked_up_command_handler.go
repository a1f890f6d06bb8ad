package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// MarkPickedUpCommandHandler moves an accepted order to pickedUp status.
// Ownership and transition rules live in the aggregate; this handler only
// loads, applies and persists.
type MarkPickedUpCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkPickedUpCommandHandler creates a handler for pickup reports.
// Requires an OrderUoWFactory for transactional persistence.
func NewMarkPickedUpCommandHandler(uowFactory OrderUoWFactory) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup report.
// Returns order.ErrNotOrderCourier when the reporter is not the assigned
// courier and order.ErrInvalidStatusTransition outside accepted status.
func (h MarkPickedUpCommandHandler) Handle(ctx context.Context, command MarkPickedUpCommand) (*order.AssignedOrder, error) {
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

	orderRepo := uow.OrderRepository()

	assignedOrder, err := orderRepo.Get(ctx, command.AssignedOrderID())
	if err != nil {
		return nil, err
	}

	if err = assignedOrder.MarkPickedUp(command.CourierID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, assignedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assignedOrder, nil
}
