package commands

import (
	"errors"

	"staffing/internal/pkg/guard"
)

// RetryPendingDeliveriesCommand triggers redelivery of checkout reports that
// were filed but never reached the admin recipient.
//
// Example:
//
//	cmd := NewRetryPendingDeliveriesCommand()
//	handler := NewRetryPendingDeliveriesCommandHandler(uowFactory, delivery, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("delivery sweep failed: %v", err)
//	}
type RetryPendingDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

var ErrRetryPendingDeliveriesCommandIsNotConstructed = errors.New(
	"RetryPendingDeliveriesCommand must be created via NewRetryPendingDeliveriesCommand constructor",
)

// NewRetryPendingDeliveriesCommand creates a command to sweep pending reports.
// This is a parameterless command that processes all pending deliveries.
func NewRetryPendingDeliveriesCommand() RetryPendingDeliveriesCommand {
	command := RetryPendingDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *RetryPendingDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrRetryPendingDeliveriesCommandIsNotConstructed)
}
