package queries

import (
	"context"
	"database/sql"
	"errors"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/services"
	"pizzaria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern; the access policy is applied after the owner is known.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle executes the query and returns the order read model. Returns an
// ObjectNotFoundError when the order does not exist and a
// PermissionDeniedError when the actor may not see it.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var (
		id      uuid.UUID
		ownerID uuid.UUID
		resp    OrderResponse
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			status,
			total_price
		FROM pedidos
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &ownerID, &resp.Status, &resp.TotalPrice)
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	if err = h.policy.CanAccess(query.Actor(), resp.OwnerID); err != nil {
		return OrderResponse{}, err
	}

	resp.Items, err = loadOrderItems(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

// loadOrderItems reads the line items of one order, re-deriving each
// subtotal from quantity and unit price.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			flavor,
			size,
			quantity,
			unit_price
		FROM itens_pedidos
		WHERE order_id = ?
		ORDER BY flavor, size
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse

		if err = rows.Scan(&item.Flavor, &item.Size, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}

		item.Subtotal = float64(item.Quantity) * item.UnitPrice
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
