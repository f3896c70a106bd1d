package queries

import (
	"context"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB, policy services.AccessPolicy) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: policy}
}

// Handle executes the listing. The all-users variant is gated by the access
// policy; the own-orders variant only requires an authenticated actor.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.AllUsers() {
		if err := h.policy.CanListAll(query.Actor()); err != nil {
			return nil, err
		}
	} else if err := query.Actor().Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			owner_id,
			status,
			total_price
		FROM pedidos
	`
	args := make([]any, 0, 1)
	if !query.AllUsers() {
		sql += ` WHERE owner_id = ?`
		args = append(args, query.Actor().ID.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var (
			id      uuid.UUID
			ownerID uuid.UUID
			resp    OrderResponse
		)

		if err = rows.Scan(&id, &ownerID, &resp.Status, &resp.TotalPrice); err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:])
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items, err = loadOrderItems(ctx, h.db, orders[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return orders, nil
}
