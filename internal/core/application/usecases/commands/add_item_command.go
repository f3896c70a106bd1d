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

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to add a line item to an existing
// order. The unit price is always resolved from the catalog at handling
// time.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	actor    services.Actor
	orderID  kernel.UUID
	flavor   string
	size     string
	quantity int

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add an item to an order.
// Validates that the order ID is valid, flavor and size are not empty,
// and the quantity is positive.
func NewAddItemCommand(
	actor services.Actor,
	orderID kernel.UUID,
	flavor, size string,
	quantity int,
) (AddItemCommand, error) {
	cmd := AddItemCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFlavor(flavor),
		cmd.setSize(size),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// Actor returns the principal requesting the change.
func (c AddItemCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the target order's identifier.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Flavor returns the requested pizza flavor.
func (c AddItemCommand) Flavor() string {
	return c.flavor
}

// Size returns the requested pizza size.
func (c AddItemCommand) Size() string {
	return c.size
}

// Quantity returns the number of units to add.
func (c AddItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setFlavor(flavor string) error {
	flavor = strings.TrimSpace(flavor)
	if flavor == "" {
		return errs.NewValueIsRequiredError("flavor")
	}

	c.flavor = flavor
	return nil
}

func (c *AddItemCommand) setSize(size string) error {
	size = strings.TrimSpace(size)
	if size == "" {
		return errs.NewValueIsRequiredError("size")
	}

	c.size = size
	return nil
}

func (c *AddItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	c.quantity = quantity
	return nil
}
