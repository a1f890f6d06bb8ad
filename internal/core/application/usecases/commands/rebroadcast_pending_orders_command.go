package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrRebroadcastPendingOrdersCommandIsNotConstructed = errors.New(
	"RebroadcastPendingOrdersCommand must be created via NewRebroadcastPendingOrdersCommand constructor",
)

// RebroadcastPendingOrdersCommand triggers a re-offer of every pending
// assignment to the couriers currently in range. Orders stuck without a taker
// get picked up by couriers that came online after the initial broadcast.
//
// Example:
//
//	cmd := NewRebroadcastPendingOrdersCommand()
//	handler := NewRebroadcastPendingOrdersCommandHandler(uowFactory, matcher, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("re-broadcast failed: %v", err)
//	}
type RebroadcastPendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewRebroadcastPendingOrdersCommand creates a command to re-offer pending
// orders. This is a parameterless command, typically issued by a scheduler.
func NewRebroadcastPendingOrdersCommand() RebroadcastPendingOrdersCommand {
	return RebroadcastPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRebroadcastPendingOrdersCommandIsNotConstructed if validation fails.
func (c RebroadcastPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRebroadcastPendingOrdersCommandIsNotConstructed)
}
