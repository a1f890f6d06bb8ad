package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler processes courier claims on pending assignments.
// The in-memory status transition validates the claim, but the repository's
// conditional update is what decides a race: it only moves the row from
// pending to accepted if no one else did, so concurrent claims produce at
// most one winner.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory)
//	cmd, _ := NewAcceptOrderCommand(assignedOrderID, courierID)
//	accepted, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such assignment (or courier)
//	case errors.Is(err, order.ErrOrderAlreadyTaken):
//	    // lost the race
//	case err != nil:
//	    log.Printf("accept failed: %v", err)
//	}
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order claims.
// Requires a UoWFactory for coordinating the order and courier repositories.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim.
// Verifies the courier exists, applies the domain transition, then performs
// the conditional pending-to-accepted update that settles concurrent claims.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) (*order.AssignedOrder, error) {
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

	if _, err := uow.CourierRepository().Get(ctx, command.CourierID()); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()

	assignedOrder, err := orderRepo.Get(ctx, command.AssignedOrderID())
	if err != nil {
		return nil, err
	}

	if err = assignedOrder.Accept(command.CourierID()); err != nil {
		return nil, err
	}

	if err = orderRepo.AcceptPending(ctx, command.AssignedOrderID(), command.CourierID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assignedOrder, nil
}
