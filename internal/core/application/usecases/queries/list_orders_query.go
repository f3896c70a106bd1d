package queries

import (
	"errors"

	"pizzaria/internal/core/domain/services"
	"pizzaria/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders with their line items. With AllUsers set
// it returns every order in the system (admin-only); otherwise it returns
// the actor's own orders.
type ListOrdersQuery struct {
	actor    services.Actor
	allUsers bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query listing the actor's orders, or every
// user's orders when allUsers is set.
func NewListOrdersQuery(actor services.Actor, allUsers bool) (ListOrdersQuery, error) {
	return ListOrdersQuery{
		actor:    actor,
		allUsers: allUsers,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the principal requesting the listing.
func (q ListOrdersQuery) Actor() services.Actor {
	return q.actor
}

// AllUsers reports whether the listing spans every user.
func (q ListOrdersQuery) AllUsers() bool {
	return q.allUsers
}
