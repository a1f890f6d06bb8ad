package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// UpdateCourierLocationCommandHandler applies courier position reports.
// The stored location feeds the matcher, so a report can immediately put the
// courier in (or out of) range of waiting orders.
type UpdateCourierLocationCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewUpdateCourierLocationCommandHandler creates a handler for courier
// position reports. Requires a CourierUoWFactory for transactional
// persistence.
func NewUpdateCourierLocationCommandHandler(uowFactory CourierUoWFactory) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report and returns the updated courier.
// Returns errs.ErrObjectNotFound for an unknown courier.
func (h UpdateCourierLocationCommandHandler) Handle(ctx context.Context, command UpdateCourierLocationCommand) (*courier.Courier, error) {
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

	courierRepo := uow.CourierRepository()

	aCourier, err := courierRepo.Get(ctx, command.CourierID())
	if err != nil {
		return nil, err
	}

	if err = aCourier.UpdateLocation(command.Location()); err != nil {
		return nil, err
	}
	aCourier.SetAvailability(command.IsAvailable())

	if err = courierRepo.Update(ctx, aCourier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aCourier, nil
}
