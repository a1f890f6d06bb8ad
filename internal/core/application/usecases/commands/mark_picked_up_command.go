package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand records that the assigned courier collected the order
// from the merchant. Only the courier who accepted the order may report it.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	assignedOrderID kernel.UUID
	courierID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPickedUpCommand creates a command to record order pickup.
// Validates that both identifiers are valid.
func NewMarkPickedUpCommand(assignedOrderID kernel.UUID, courierID kernel.UUID) (MarkPickedUpCommand, error) {
	pickUpCommand := MarkPickedUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickUpCommand.setAssignedOrderID(assignedOrderID),
		pickUpCommand.setCourierID(courierID),
	); err != nil {
		return MarkPickedUpCommand{}, err
	}

	return pickUpCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkPickedUpCommandIsNotConstructed if validation fails.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

// AssignedOrderID returns the delivery assignment identifier.
func (c MarkPickedUpCommand) AssignedOrderID() kernel.UUID {
	return c.assignedOrderID
}

// CourierID returns the reporting courier's identifier.
func (c MarkPickedUpCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *MarkPickedUpCommand) setAssignedOrderID(assignedOrderID kernel.UUID) error {
	if err := assignedOrderID.Validate(); err != nil {
		return err
	}

	c.assignedOrderID = assignedOrderID
	return nil
}

func (c *MarkPickedUpCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
