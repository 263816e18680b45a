package queries

import (
	"errors"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/guard"
)

var ErrGetMessagesQueryIsNotConstructed = errors.New(
	"GetMessagesQuery must be created via NewGetMessagesQuery constructor",
)

// GetMessagesQuery retrieves the conversation between two users: messages in
// both directions, oldest first.
type GetMessagesQuery struct {
	userA kernel.UUID
	userB kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMessagesQuery creates a query for one conversation.
func NewGetMessagesQuery(userA, userB kernel.UUID) (GetMessagesQuery, error) {
	if err := userA.Validate(); err != nil {
		return GetMessagesQuery{}, err
	}
	if err := userB.Validate(); err != nil {
		return GetMessagesQuery{}, err
	}

	return GetMessagesQuery{
		userA: userA,
		userB: userB,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMessagesQuery) Validate() error {
	return q.guard.Validate(ErrGetMessagesQueryIsNotConstructed)
}

// UserA returns the first participant.
func (q GetMessagesQuery) UserA() kernel.UUID {
	return q.userA
}

// UserB returns the second participant.
func (q GetMessagesQuery) UserB() kernel.UUID {
	return q.userB
}
