package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffing/internal/core/domain/model/kernel"
)

// GetMessagesQueryHandler reads one conversation from the database.
type GetMessagesQueryHandler struct {
	db *gorm.DB
}

// NewGetMessagesQueryHandler creates a handler for conversation lookups.
func NewGetMessagesQueryHandler(db *gorm.DB) GetMessagesQueryHandler {
	return GetMessagesQueryHandler{db: db}
}

// Handle executes the lookup. Both directions are included and messages are
// ordered oldest first so the client can render the thread as-is.
func (h GetMessagesQueryHandler) Handle(ctx context.Context, query GetMessagesQuery) ([]MessageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	a := query.UserA().Bytes()
	b := query.UserB().Bytes()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender_id,
			receiver_id,
			body,
			sent_at
		FROM messages
		WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)
		ORDER BY sent_at ASC
	`, a, b, b, a).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]MessageResponse, 0)
	for rows.Next() {
		var msg MessageResponse
		var id, senderID, receiverID uuid.UUID

		if err = rows.Scan(&id, &senderID, &receiverID, &msg.Body, &msg.SentAt); err != nil {
			return nil, err
		}

		if msg.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if msg.Sender, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
			return nil, err
		}
		if msg.Receiver, err = kernel.UUIDFromBytes(receiverID[:]); err != nil {
			return nil, err
		}

		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
