// Package notificationrepo provides persistence for user notifications.
package notificationrepo

import (
	"time"

	"github.com/google/uuid"

	"staffing/internal/core/domain/model/notification"
)

// NotificationDTO represents the database structure for notifications.
type NotificationDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;index"`
	Title  string
	Body   string
	Date   time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:     n.ID.Bytes(),
		UserID: n.UserID.Bytes(),
		Title:  n.Title,
		Body:   n.Body,
		Date:   n.Date,
	}
}
