// Package ports defines repository interfaces for the order domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored with their line items; the repository owns the
// items' lifecycle through the parent.
type OrderRepository interface {
	// Add persists a new order aggregate with all its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing its
	// line items with the current set. Uses the aggregate's version for
	// optimistic locking; a concurrent update surfaces as a
	// VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including all line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByOwner retrieves every order owned by the given user.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order in the system. Admin listings only.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllOpen retrieves orders in a non-terminal status.
	// Used by the total reconciliation job.
	GetAllOpen(ctx context.Context) ([]*order.Order, error)
}
