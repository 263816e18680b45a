// Package message contains the direct message record exchanged between users.
package message

import (
	"time"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
)

// Message is a direct message from one user to another.
type Message struct {
	ID       kernel.UUID
	Sender   kernel.UUID
	Receiver kernel.UUID
	Body     string
	SentAt   time.Time
}

// New creates a message with validation.
func New(id, sender, receiver kernel.UUID, body string, sentAt time.Time) (Message, error) {
	if err := id.Validate(); err != nil {
		return Message{}, err
	}
	if err := sender.Validate(); err != nil {
		return Message{}, err
	}
	if err := receiver.Validate(); err != nil {
		return Message{}, err
	}
	if body == "" {
		return Message{}, errs.NewValueIsRequiredError("message")
	}

	return Message{
		ID:       id,
		Sender:   sender,
		Receiver: receiver,
		Body:     body,
		SentAt:   sentAt,
	}, nil
}
