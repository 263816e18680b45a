package commands

import (
	"errors"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/model/user"
	"staffing/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a user replacing their own profile fields.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	profile user.Profile

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to upsert a user's profile.
func NewUpdateProfileCommand(userID kernel.UUID, profile user.Profile) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	profile.UserID = userID
	if err := cmd.setProfile(profile); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// Profile returns the replacement profile fields.
func (c UpdateProfileCommand) Profile() user.Profile {
	return c.profile
}

func (c *UpdateProfileCommand) setProfile(profile user.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	c.profile = profile
	return nil
}
