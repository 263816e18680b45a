package queries

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staffing/internal/pkg/tokens"
)

// ErrInvalidCredentials is returned when the email is unknown or the
// password does not match. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginQueryHandler authenticates credentials and issues bearer tokens.
type LoginQueryHandler struct {
	db     *gorm.DB
	issuer *tokens.Issuer
}

// NewLoginQueryHandler creates a handler for login.
func NewLoginQueryHandler(db *gorm.DB, issuer *tokens.Issuer) LoginQueryHandler {
	return LoginQueryHandler{db: db, issuer: issuer}
}

// Handle verifies the password against the stored bcrypt hash and returns a
// signed token plus the account fields.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginResponse{}, err
	}

	account, hash, err := scanUserByEmail(ctx, h.db, query.Email())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(query.Password())) != nil {
		return LoginResponse{}, ErrInvalidCredentials
	}

	token, err := h.issuer.Issue(account.ID.String())
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{Token: token, User: account}, nil
}
