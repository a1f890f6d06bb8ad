package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ErrOrderAlreadyAssigned is returned when an assignment already exists for
// the commerce order.
var ErrOrderAlreadyAssigned = errors.New("order is already assigned for delivery")

// AssignOrderResult carries the stored assignment together with the number of
// couriers that were offered the order. Zero notified couriers is a valid
// outcome: the order stays pending until someone comes into range.
type AssignOrderResult struct {
	AssignedOrder    *order.AssignedOrder
	NotifiedCouriers int
}

// AssignOrderCommandHandler orchestrates putting an order up for delivery:
// geocode the address, persist a pending assignment, and offer it to every
// available courier within matching range.
//
// Geocoding failures abort the whole operation, since an assignment without
// coordinates can never be matched. Notification failures do not: delivery of
// offers is best effort and handled inside the notifier.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory, geocoder, matcher, notifier, logger)
//	cmd, _ := NewAssignOrderCommand(orderID, "1 Galle Face, Colombo")
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ports.ErrAddressNotResolved):
//	    log.Println("customer address could not be geocoded")
//	case errors.Is(err, ErrOrderAlreadyAssigned):
//	    log.Println("duplicate assignment request")
//	case err != nil:
//	    log.Printf("assignment failed: %v", err)
//	}
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	geocoder   ports.Geocoder
	matcher    services.CourierMatcher
	notifier   ports.AssignmentNotifier
	logger     *slog.Logger
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
// Requires a UoWFactory for transactional persistence, a geocoder for address
// resolution and a notifier for courier offers.
func NewAssignOrderCommandHandler(
	uowFactory UoWFactory,
	geocoder ports.Geocoder,
	matcher services.CourierMatcher,
	notifier ports.AssignmentNotifier,
	logger *slog.Logger,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		matcher:    matcher,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the assignment command.
// Resolves the address, stores the assignment in pending status and notifies
// every matched courier after the transaction commits, so offers never go out
// for an order that was not durably stored.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) (AssignOrderResult, error) {
	if err := command.Validate(); err != nil {
		return AssignOrderResult{}, err
	}

	location, err := h.geocoder.Forward(ctx, command.Address())
	if err != nil {
		return AssignOrderResult{}, err
	}

	assignedOrder, err := order.NewAssignedOrder(kernel.NewUUID(), command.OrderID(), location)
	if err != nil {
		return AssignOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AssignOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	if _, err = orderRepo.GetByOrderID(ctx, command.OrderID()); err == nil {
		return AssignOrderResult{}, ErrOrderAlreadyAssigned
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return AssignOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, assignedOrder); err != nil {
		return AssignOrderResult{}, err
	}

	couriers, err := uow.CourierRepository().GetAllAvailable(ctx)
	if err != nil {
		return AssignOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignOrderResult{}, err
	}

	matched, err := h.matcher.Match(assignedOrder, couriers)
	if err != nil {
		return AssignOrderResult{}, err
	}

	if len(matched) == 0 {
		h.logger.Info("no couriers in range for assignment",
			slog.String("assignedOrderID", assignedOrder.ID().String()))
	}
	for _, c := range matched {
		h.notifier.NotifyAssignment(ctx, c, assignedOrder)
	}

	return AssignOrderResult{AssignedOrder: assignedOrder, NotifiedCouriers: len(matched)}, nil
}
