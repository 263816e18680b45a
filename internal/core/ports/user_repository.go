package ports

import (
	"context"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user records.
type UserRepository interface {
	// Add persists a new user.
	Add(ctx context.Context, u *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *user.User) error

	// GetByID retrieves a user by its unique identifier.
	GetByID(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// GetFirstAdmin retrieves the earliest created user with the admin role.
	GetFirstAdmin(ctx context.Context) (*user.User, error)
}
