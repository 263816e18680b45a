package commands

import (
	"errors"

	"staffing/internal/pkg/errs"
	"staffing/internal/pkg/guard"
)

var ErrVerifyOTPCommandIsNotConstructed = errors.New(
	"VerifyOTPCommand must be created via NewVerifyOTPCommand constructor",
)

// VerifyOTPCommand represents the confirmation of an emailed signup code.
type VerifyOTPCommand struct { //nolint:recvcheck //using for validation
	email string
	code  string

	guard guard.ConstructorGuard
}

// NewVerifyOTPCommand creates a command to confirm a verification code.
func NewVerifyOTPCommand(email, code string) (VerifyOTPCommand, error) {
	cmd := VerifyOTPCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setCode(code),
	); err != nil {
		return VerifyOTPCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyOTPCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOTPCommandIsNotConstructed)
}

// Email returns the email address being verified.
func (c VerifyOTPCommand) Email() string {
	return c.email
}

// Code returns the submitted verification code.
func (c VerifyOTPCommand) Code() string {
	return c.code
}

func (c *VerifyOTPCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *VerifyOTPCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("otp")
	}

	c.code = code
	return nil
}
