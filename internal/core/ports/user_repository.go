package ports

import (
	"context"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. The email must be unique; a duplicate
	// surfaces as a ValueIsInvalidError.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by their normalized login email.
	// Used by the login flow.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
