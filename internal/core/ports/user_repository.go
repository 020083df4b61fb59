package ports

import (
	"context"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user. A duplicate email surfaces as an error
	// matching errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by id.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by email; the lookup is case-insensitive
	// because emails are stored lowercased.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// Delete removes a user. Returns an error matching errs.ErrObjectNotFound
	// when no row existed to delete.
	Delete(ctx context.Context, id kernel.UUID) error
}
