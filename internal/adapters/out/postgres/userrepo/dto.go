// Package userrepo provides persistence for user accounts.
package userrepo

import (
	"time"

	"github.com/google/uuid"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string    `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string    `gorm:"index"`
	Verified     bool
	CreatedAt    time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID.Bytes(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Verified:     u.Verified,
		CreatedAt:    u.CreatedAt,
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &user.User{
		ID:           id,
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
		Role:         user.Role(dto.Role),
		Verified:     dto.Verified,
		CreatedAt:    dto.CreatedAt,
	}, nil
}
