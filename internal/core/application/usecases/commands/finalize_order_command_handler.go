package commands

import (
	"context"

	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/core/domain/services"
)

// FinalizeOrderCommandHandler handles closing orders. The access policy
// restricts finalization to administrators; an already fechado or cancelado
// order refuses the transition.
type FinalizeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewFinalizeOrderCommandHandler creates a handler for finalization operations.
func NewFinalizeOrderCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle authorizes the actor, loads the order, applies the status
// transition and persists the result. Returns the finalized order.
func (h *FinalizeOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanFinalize(cmd.Actor()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Finalize(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
