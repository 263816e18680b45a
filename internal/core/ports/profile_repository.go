package ports

import (
	"context"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/model/user"
)

// ProfileRepository defines the persistence contract for worker profiles.
type ProfileRepository interface {
	// Get retrieves the profile belonging to a user.
	Get(ctx context.Context, userID kernel.UUID) (*user.Profile, error)

	// Upsert creates the user's profile or replaces its fields.
	Upsert(ctx context.Context, profile *user.Profile) error
}
