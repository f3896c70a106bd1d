package commands

import (
	"context"
	"math"
)

// ReconcileOrderTotalsCommandHandler recomputes the total of every open
// order from its line items and persists the ones that drifted. Drift can
// only appear through out-of-band writes; the aggregate keeps its total
// consistent on every mutation.
type ReconcileOrderTotalsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReconcileOrderTotalsCommandHandler creates a handler for total reconciliation.
func NewReconcileOrderTotalsCommandHandler(uowFactory OrderUoWFactory) ReconcileOrderTotalsCommandHandler {
	return ReconcileOrderTotalsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle recomputes totals over all open orders in one transaction and
// returns the number of orders whose stored total was corrected.
func (h *ReconcileOrderTotalsCommandHandler) Handle(ctx context.Context, cmd ReconcileOrderTotalsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllOpen(ctx)
	if err != nil {
		return 0, err
	}

	reconciled := 0
	for _, aggregate := range orders {
		before := aggregate.TotalPrice()
		after := aggregate.RecomputeTotal()
		if math.Abs(after-before) < 1e-9 {
			continue
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		reconciled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return reconciled, nil
}
