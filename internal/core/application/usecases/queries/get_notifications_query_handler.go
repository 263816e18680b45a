package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffing/internal/core/domain/model/kernel"
)

// GetNotificationsQueryHandler lists a user's notifications.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification listings.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the listing, newest first.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			title,
			body,
			date
		FROM notifications
		WHERE user_id = ?
		ORDER BY date DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]NotificationResponse, 0)
	for rows.Next() {
		var note NotificationResponse
		var id, userID uuid.UUID

		if err = rows.Scan(&id, &userID, &note.Title, &note.Body, &note.Date); err != nil {
			return nil, err
		}

		if note.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if note.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}

		notifications = append(notifications, note)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
