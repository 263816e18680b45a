package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"staffing/internal/pkg/errs"
)

// GetUserQueryHandler fetches one account by id from the database.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for account lookups.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the lookup. A missing id yields an ObjectNotFoundError.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	account, _, err := scanUserByID(ctx, h.db, query.UserID())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, errs.NewObjectNotFoundError("userID", query.UserID().String())
		}
		return UserResponse{}, err
	}

	return account, nil
}
