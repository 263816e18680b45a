package profilerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/model/user"
	"staffing/internal/pkg/errs"
)

// GormProfileRepository implements ProfileRepository using GORM.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GORM profile repository.
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// Get retrieves the profile belonging to a user.
func (r *GormProfileRepository) Get(ctx context.Context, userID kernel.UUID) (*user.Profile, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("profile", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Upsert creates the user's profile row or replaces all of its fields.
func (r *GormProfileRepository) Upsert(ctx context.Context, profile *user.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
