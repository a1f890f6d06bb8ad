package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAssignOrderCommandIsNotConstructed = errors.New(
		"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
)

// AssignOrderCommand represents a request to register a commerce order for
// delivery. Carries the order identifier and the customer's street address,
// which the handler resolves to coordinates before storing the assignment.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(orderID, "1 Galle Face, Colombo")
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to assign order: %w", err)
//	}
//	fmt.Printf("Order stored, %d couriers offered\n", result.NotifiedCouriers)
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	address string

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to put an order up for delivery.
// Validates that the order ID is valid and the address is not empty.
func NewAssignOrderCommand(orderID kernel.UUID, address string) (AssignOrderCommand, error) {
	assignCommand := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setAddress(address),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderCommandIsNotConstructed if validation fails.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the commerce order identifier.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the customer's delivery address.
func (c AssignOrderCommand) Address() string {
	return c.address
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
