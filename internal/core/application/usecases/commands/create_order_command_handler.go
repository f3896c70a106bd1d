package commands

import (
	"context"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves missing item prices through the injected price catalog and
// persists the order with its line items in a single transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    *services.PriceCatalog
	policy     services.AccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog *services.PriceCatalog,
	policy services.AccessPolicy,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		policy:     policy,
	}
}

// Handle processes the order creation command and returns the created order.
// Unit prices missing from the request are captured from the catalog at this
// moment, making the order immune to later menu changes.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanCreateFor(cmd.Actor(), cmd.OwnerID()); err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		unitPrice, err := h.resolvePrice(input)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(kernel.NewUUID(), input.Flavor, input.Size, input.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.OwnerID(), cmd.Status(), items)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *CreateOrderCommandHandler) resolvePrice(input OrderItemInput) (float64, error) {
	if input.UnitPrice != nil {
		return *input.UnitPrice, nil
	}
	return h.catalog.PriceFor(input.Flavor, input.Size)
}
