package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a courier's claim on a pending assignment.
// The claim is exclusive: when several couriers race for the same order,
// exactly one wins and the rest get order.ErrOrderAlreadyTaken.
//
// Example:
//
//	cmd, err := NewAcceptOrderCommand(assignedOrderID, courierID)
//	if err != nil {
//	    return fmt.Errorf("invalid accept request: %w", err)
//	}
//
//	accepted, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrOrderAlreadyTaken) {
//	    // another courier got there first
//	}
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	assignedOrderID kernel.UUID
	courierID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a courier to claim an order.
// Validates that both identifiers are valid.
func NewAcceptOrderCommand(assignedOrderID kernel.UUID, courierID kernel.UUID) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setAssignedOrderID(assignedOrderID),
		acceptCommand.setCourierID(courierID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// AssignedOrderID returns the delivery assignment identifier.
func (c AcceptOrderCommand) AssignedOrderID() kernel.UUID {
	return c.assignedOrderID
}

// CourierID returns the claiming courier's identifier.
func (c AcceptOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AcceptOrderCommand) setAssignedOrderID(assignedOrderID kernel.UUID) error {
	if err := assignedOrderID.Validate(); err != nil {
		return err
	}

	c.assignedOrderID = assignedOrderID
	return nil
}

func (c *AcceptOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
