package commands

import (
	"errors"
	"fmt"

	"staffing/internal/core/domain/model/user"
	"staffing/internal/pkg/errs"
	"staffing/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a signup request. The account starts
// unverified until the emailed one-time code is confirmed.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a signup command. The password and its
// confirmation must match; a mismatch is rejected here before any hashing.
// An empty role defaults to a regular user account.
func NewRegisterUserCommand(name, email, password, confirmPassword, role string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password, confirmPassword),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the display name of the new account.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the signup email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plain-text password to hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the role the account is created with.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password, confirmPassword string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if password != confirmPassword {
		return errs.NewValueIsInvalidErrorWithCause("password", fmt.Errorf("passwords do not match"))
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role string) error {
	if role == "" {
		c.role = user.RoleUser
		return nil
	}

	parsed := user.Role(role)
	if err := parsed.Validate(); err != nil {
		return err
	}

	c.role = parsed
	return nil
}
