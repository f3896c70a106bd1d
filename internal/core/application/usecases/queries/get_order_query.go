// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/services"
	"pizzaria/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items. Access is
// limited to the order's owner and administrators.
type GetOrderQuery struct {
	actor   services.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order.
func NewGetOrderQuery(actor services.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the principal requesting the order.
func (q GetOrderQuery) Actor() services.Actor {
	return q.actor
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse represents one line item in the read model. Subtotal is
// always re-derived as Quantity * UnitPrice, never read from storage.
type OrderItemResponse struct {
	Flavor    string
	Size      string
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

// OrderResponse represents an order in the read model.
type OrderResponse struct {
	ID         kernel.UUID
	OwnerID    kernel.UUID
	Status     string
	TotalPrice float64
	Items      []OrderItemResponse
}
