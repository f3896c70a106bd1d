package commands

import (
	"errors"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/services"
	"pizzaria/internal/pkg/guard"
)

var ErrFinalizeOrderCommandIsNotConstructed = errors.New(
	"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
)

// FinalizeOrderCommand represents a request to close an order. Admin-only.
type FinalizeOrderCommand struct { //nolint:recvcheck //using for validation
	actor   services.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinalizeOrderCommand creates a command to finalize the given order.
func NewFinalizeOrderCommand(actor services.Actor, orderID kernel.UUID) (FinalizeOrderCommand, error) {
	cmd := FinalizeOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return FinalizeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

// Actor returns the principal requesting the finalization.
func (c FinalizeOrderCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the target order's identifier.
func (c FinalizeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *FinalizeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
