// Package messagerepo provides persistence for direct messages.
package messagerepo

import (
	"time"

	"github.com/google/uuid"

	"staffing/internal/core/domain/model/message"
)

// MessageDTO represents the database structure for persisting messages.
type MessageDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID   uuid.UUID `gorm:"type:uuid;index"`
	ReceiverID uuid.UUID `gorm:"type:uuid;index"`
	Body       string
	SentAt     time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "messages".
func (MessageDTO) TableName() string {
	return "messages"
}

func fromDomain(m *message.Message) MessageDTO {
	return MessageDTO{
		ID:         m.ID.Bytes(),
		SenderID:   m.Sender.Bytes(),
		ReceiverID: m.Receiver.Bytes(),
		Body:       m.Body,
		SentAt:     m.SentAt,
	}
}
