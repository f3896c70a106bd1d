package commands

import (
	"errors"

	"pizzaria/internal/pkg/guard"
)

var ErrReconcileOrderTotalsCommandIsNotConstructed = errors.New(
	"ReconcileOrderTotalsCommand must be created via NewReconcileOrderTotalsCommand constructor",
)

// ReconcileOrderTotalsCommand represents a request to recompute the stored
// total of every open order from its line items. Run periodically as a
// consistency fallback next to the incremental total updates.
type ReconcileOrderTotalsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileOrderTotalsCommand creates a reconciliation command.
func NewReconcileOrderTotalsCommand() (ReconcileOrderTotalsCommand, error) {
	return ReconcileOrderTotalsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileOrderTotalsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOrderTotalsCommandIsNotConstructed)
}
