package ports

import (
	"context"

	"staffing/internal/core/domain/model/message"
)

// MessageRepository defines the persistence contract for chat messages.
type MessageRepository interface {
	// Add persists a new message.
	Add(ctx context.Context, m *message.Message) error
}
