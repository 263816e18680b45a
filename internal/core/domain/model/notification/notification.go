// Package notification contains the stored notification record shown to a user.
package notification

import (
	"time"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
)

// Notification is a stored title+body notification addressed to one user.
type Notification struct {
	ID     kernel.UUID
	UserID kernel.UUID
	Title  string
	Body   string
	Date   time.Time
}

// New creates a notification with validation.
func New(id, userID kernel.UUID, title, body string, date time.Time) (Notification, error) {
	if err := id.Validate(); err != nil {
		return Notification{}, err
	}
	if err := userID.Validate(); err != nil {
		return Notification{}, err
	}
	if title == "" {
		return Notification{}, errs.NewValueIsRequiredError("title")
	}
	if body == "" {
		return Notification{}, errs.NewValueIsRequiredError("body")
	}

	return Notification{
		ID:     id,
		UserID: userID,
		Title:  title,
		Body:   body,
		Date:   date,
	}, nil
}
