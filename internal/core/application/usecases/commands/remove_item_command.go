package commands

import (
	"errors"
	"fmt"
	"strings"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/services"
	"pizzaria/internal/pkg/errs"
	"pizzaria/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to remove units of a line item
// from an existing order, matched by (flavor, size).
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	actor    services.Actor
	orderID  kernel.UUID
	flavor   string
	size     string
	quantity int

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove units of an item from an
// order. Validation mirrors NewAddItemCommand.
func NewRemoveItemCommand(
	actor services.Actor,
	orderID kernel.UUID,
	flavor, size string,
	quantity int,
) (RemoveItemCommand, error) {
	cmd := RemoveItemCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFlavor(flavor),
		cmd.setSize(size),
		cmd.setQuantity(quantity),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// Actor returns the principal requesting the change.
func (c RemoveItemCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the target order's identifier.
func (c RemoveItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Flavor returns the flavor of the item to remove.
func (c RemoveItemCommand) Flavor() string {
	return c.flavor
}

// Size returns the size of the item to remove.
func (c RemoveItemCommand) Size() string {
	return c.size
}

// Quantity returns the number of units to remove.
func (c RemoveItemCommand) Quantity() int {
	return c.quantity
}

func (c *RemoveItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveItemCommand) setFlavor(flavor string) error {
	flavor = strings.TrimSpace(flavor)
	if flavor == "" {
		return errs.NewValueIsRequiredError("flavor")
	}

	c.flavor = flavor
	return nil
}

func (c *RemoveItemCommand) setSize(size string) error {
	size = strings.TrimSpace(size)
	if size == "" {
		return errs.NewValueIsRequiredError("size")
	}

	c.size = size
	return nil
}

func (c *RemoveItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	c.quantity = quantity
	return nil
}
