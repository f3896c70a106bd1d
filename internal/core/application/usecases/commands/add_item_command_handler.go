package commands

import (
	"context"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/core/domain/services"
)

// AddItemCommandHandler handles adding a line item to an existing order.
// The unit price is captured from the catalog at the moment of addition.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    *services.PriceCatalog
	policy     services.AccessPolicy
}

// NewAddItemCommandHandler creates a handler for item addition operations.
func NewAddItemCommandHandler(
	uowFactory OrderUoWFactory,
	catalog *services.PriceCatalog,
	policy services.AccessPolicy,
) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		policy:     policy,
	}
}

// Handle loads the order, authorizes the actor against its owner, resolves
// the catalog price, applies the aggregate mutation and persists it. Returns
// the updated order.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
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

	if err = h.policy.CanAccess(cmd.Actor(), aggregate.OwnerID()); err != nil {
		return nil, err
	}

	unitPrice, err := h.catalog.PriceFor(cmd.Flavor(), cmd.Size())
	if err != nil {
		return nil, err
	}

	item, err := order.NewItem(kernel.NewUUID(), cmd.Flavor(), cmd.Size(), cmd.Quantity(), unitPrice)
	if err != nil {
		return nil, err
	}

	if err = aggregate.AddItem(item); err != nil {
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
