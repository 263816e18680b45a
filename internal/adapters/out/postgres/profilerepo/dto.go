// Package profilerepo provides persistence for user profiles.
package profilerepo

import (
	"github.com/google/uuid"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/model/user"
)

// ProfileDTO represents the database structure for persisting profiles.
// One row per user, keyed by the owning user's id.
type ProfileDTO struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Address        string
	City           string
	Pincode        string
	Phone          string
	Qualifications string
	Skills         string
	IDOptions      string
}

// TableName overrides GORM's default naming to use "profiles".
func (ProfileDTO) TableName() string {
	return "profiles"
}

func fromDomain(p *user.Profile) ProfileDTO {
	return ProfileDTO{
		UserID:         p.UserID.Bytes(),
		Address:        p.Address,
		City:           p.City,
		Pincode:        p.Pincode,
		Phone:          p.Phone,
		Qualifications: p.Qualifications,
		Skills:         p.Skills,
		IDOptions:      p.IDOptions,
	}
}

func toDomain(dto ProfileDTO) (*user.Profile, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return &user.Profile{
		UserID:         userID,
		Address:        dto.Address,
		City:           dto.City,
		Pincode:        dto.Pincode,
		Phone:          dto.Phone,
		Qualifications: dto.Qualifications,
		Skills:         dto.Skills,
		IDOptions:      dto.IDOptions,
	}, nil
}
