package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
)

// GetProfileQueryHandler fetches a user's profile from the database.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile lookups.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the lookup. A user without a saved profile yields an
// ObjectNotFoundError.
func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (ProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return ProfileResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			user_id,
			address,
			city,
			pincode,
			phone,
			qualifications,
			skills,
			id_options
		FROM profiles
		WHERE user_id = ?
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return ProfileResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ProfileResponse{}, err
		}
		return ProfileResponse{}, errs.NewObjectNotFoundError("userID", query.UserID().String())
	}

	var profile ProfileResponse
	var userID uuid.UUID

	err = rows.Scan(
		&userID,
		&profile.Address,
		&profile.City,
		&profile.Pincode,
		&profile.Phone,
		&profile.Qualifications,
		&profile.Skills,
		&profile.IDOptions,
	)
	if err != nil {
		return ProfileResponse{}, err
	}

	profile.UserID, err = kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return ProfileResponse{}, err
	}

	return profile, nil
}
