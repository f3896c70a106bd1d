package commands

import (
	"context"

	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/core/domain/services"
)

// RemoveItemResult carries the outcome of a removal: the updated order and
// the summary of what came off it.
type RemoveItemResult struct {
	Order   *order.Order
	Removed order.RemovedItem
}

// RemoveItemCommandHandler handles removing units of a line item from an
// existing order. Removing at least as many units as the item holds deletes
// the line item entirely.
type RemoveItemCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewRemoveItemCommandHandler creates a handler for item removal operations.
func NewRemoveItemCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle loads the order, authorizes the actor against its owner, applies
// the aggregate removal and persists the result.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (RemoveItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return RemoveItemResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RemoveItemResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return RemoveItemResult{}, err
	}

	if err = h.policy.CanAccess(cmd.Actor(), aggregate.OwnerID()); err != nil {
		return RemoveItemResult{}, err
	}

	removed, err := aggregate.RemoveItem(cmd.Flavor(), cmd.Size(), cmd.Quantity())
	if err != nil {
		return RemoveItemResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return RemoveItemResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RemoveItemResult{}, err
	}

	return RemoveItemResult{Order: aggregate, Removed: removed}, nil
}
