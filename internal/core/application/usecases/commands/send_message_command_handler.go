package commands

import (
	"context"
	"time"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/model/message"
)

// SendMessageCommandHandler persists direct messages between users.
type SendMessageCommandHandler struct {
	uowFactory MessageUoWFactory
}

// NewSendMessageCommandHandler creates a handler for message sending.
func NewSendMessageCommandHandler(uowFactory MessageUoWFactory) SendMessageCommandHandler {
	return SendMessageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the send command and returns the stored message.
func (h *SendMessageCommandHandler) Handle(ctx context.Context, cmd SendMessageCommand) (*message.Message, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	msg, err := message.New(kernel.NewUUID(), cmd.SenderID(), cmd.ReceiverID(), cmd.Body(), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MessageRepository().Add(ctx, &msg); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &msg, nil
}
