// Package user contains the user account and profile records referenced by
// the job-post lifecycle. Users are externally owned collaborators; only the
// fields the staffing flows need are modeled here.
package user

import (
	"time"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
)

// Role classifies a user account. The checkout pipeline emails the first
// user carrying RoleAdmin.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleUser:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

// User is an account that can post, accept, and work job posts.
type User struct {
	ID           kernel.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Verified     bool
	CreatedAt    time.Time
}

// Validate checks the account's required fields.
func (u User) Validate() error {
	if err := u.ID.Validate(); err != nil {
		return err
	}
	if u.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if u.Email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if u.PasswordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	return u.Role.Validate()
}

// Profile holds the free-form profile fields a user maintains about themselves.
type Profile struct {
	UserID         kernel.UUID
	Address        string
	City           string
	Pincode        string
	Phone          string
	Qualifications string
	Skills         string
	IDOptions      string
}

// Validate checks the profile references a user.
func (p Profile) Validate() error {
	return p.UserID.Validate()
}
