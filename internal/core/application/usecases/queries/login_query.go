package queries

import (
	"errors"

	"staffing/internal/pkg/errs"
	"staffing/internal/pkg/guard"
)

var ErrLoginQueryIsNotConstructed = errors.New(
	"LoginQuery must be created via NewLoginQuery constructor",
)

// LoginQuery exchanges credentials for a signed bearer token.
type LoginQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a login query from submitted credentials.
func NewLoginQuery(email, password string) (LoginQuery, error) {
	if email == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("password")
	}

	return LoginQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the submitted email address.
func (q LoginQuery) Email() string {
	return q.email
}

// Password returns the submitted plain-text password.
func (q LoginQuery) Password() string {
	return q.password
}

// LoginResponse carries the signed token and the authenticated account.
type LoginResponse struct {
	Token string
	User  UserResponse
}
