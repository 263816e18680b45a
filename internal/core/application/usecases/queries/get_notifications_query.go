package queries

import (
	"errors"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves a user's notifications, newest first.
type GetNotificationsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query listing one user's notifications.
func NewGetNotificationsQuery(userID kernel.UUID) (GetNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}

	return GetNotificationsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the notification recipient.
func (q GetNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}
