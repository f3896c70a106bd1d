package commands

import (
	"errors"
	"fmt"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/core/domain/services"
	"pizzaria/internal/pkg/errs"
	"pizzaria/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one requested line item of a new order. UnitPrice is
// optional; when nil the handler resolves it from the price catalog.
type OrderItemInput struct {
	Flavor    string
	Size      string
	Quantity  int
	UnitPrice *float64
}

// CreateOrderCommand represents a request to create a new pizza order for a
// given owner, optionally pre-filled with line items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, orderID, ownerID, "", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, policy)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor   services.Actor
	orderID kernel.UUID
	ownerID kernel.UUID
	status  order.Status
	items   []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order. The
// status literal is optional and defaults to pendente; item quantities must
// be positive and explicit unit prices non-negative.
func NewCreateOrderCommand(
	actor services.Actor,
	orderID, ownerID kernel.UUID,
	status string,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
		cmd.setStatus(status),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the principal requesting the creation.
func (c CreateOrderCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the user the order will belong to.
func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Status returns the normalized initial status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setStatus(status string) error {
	if status == "" {
		c.status = order.Pendente
		return nil
	}

	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	for _, item := range items {
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity),
			)
		}
		if item.UnitPrice != nil && *item.UnitPrice < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"unitPrice",
				fmt.Errorf("%.2f is negative", *item.UnitPrice),
			)
		}
	}

	c.items = make([]OrderItemInput, len(items))
	copy(c.items, items)
	return nil
}
