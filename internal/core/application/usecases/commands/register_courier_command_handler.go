package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// RegisterCourierCommandHandler persists new courier profiles.
// Couriers start out unavailable and join the matching pool only after
// reporting a location with availability set.
type RegisterCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewRegisterCourierCommandHandler creates a handler for courier
// registration. Requires a CourierUoWFactory for transactional persistence.
func NewRegisterCourierCommandHandler(uowFactory CourierUoWFactory) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration and returns the stored courier.
func (h RegisterCourierCommandHandler) Handle(ctx context.Context, command RegisterCourierCommand) (*courier.Courier, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	newCourier, err := courier.NewCourier(
		kernel.NewUUID(),
		command.Name(),
		command.Phone(),
		command.Email(),
		command.ChatID(),
		command.Location(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, newCourier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newCourier, nil
}
