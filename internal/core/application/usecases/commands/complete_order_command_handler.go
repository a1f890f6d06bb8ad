package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler moves an order to its terminal delivered
// status. Completion is allowed from accepted as well as pickedUp, so a
// courier who forgot to report pickup can still close the delivery.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for delivery reports.
// Requires an OrderUoWFactory for transactional persistence.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery report.
// Returns order.ErrNotOrderCourier when the reporter is not the assigned
// courier and order.ErrInvalidStatusTransition once the order is delivered.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) (*order.AssignedOrder, error) {
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

	if err = assignedOrder.Complete(command.CourierID()); err != nil {
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
