package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand records the delivery of an order to the customer.
// Only the courier who accepted the order may complete it; delivered is
// terminal.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	assignedOrderID kernel.UUID
	courierID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to record delivery.
// Validates that both identifiers are valid.
func NewCompleteOrderCommand(assignedOrderID kernel.UUID, courierID kernel.UUID) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setAssignedOrderID(assignedOrderID),
		completeCommand.setCourierID(courierID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// AssignedOrderID returns the delivery assignment identifier.
func (c CompleteOrderCommand) AssignedOrderID() kernel.UUID {
	return c.assignedOrderID
}

// CourierID returns the reporting courier's identifier.
func (c CompleteOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *CompleteOrderCommand) setAssignedOrderID(assignedOrderID kernel.UUID) error {
	if err := assignedOrderID.Validate(); err != nil {
		return err
	}

	c.assignedOrderID = assignedOrderID
	return nil
}

func (c *CompleteOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
