package commands

import (
	"errors"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
	"staffing/internal/pkg/guard"
)

var ErrSendMessageCommandIsNotConstructed = errors.New(
	"SendMessageCommand must be created via NewSendMessageCommand constructor",
)

// SendMessageCommand represents one direct message between two users.
type SendMessageCommand struct { //nolint:recvcheck //using for validation
	senderID   kernel.UUID
	receiverID kernel.UUID
	body       string

	guard guard.ConstructorGuard
}

// NewSendMessageCommand creates a command to send a direct message.
func NewSendMessageCommand(senderID, receiverID kernel.UUID, body string) (SendMessageCommand, error) {
	cmd := SendMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSenderID(senderID),
		cmd.setReceiverID(receiverID),
		cmd.setBody(body),
	); err != nil {
		return SendMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendMessageCommandIsNotConstructed)
}

// SenderID returns the sending user's identifier.
func (c SendMessageCommand) SenderID() kernel.UUID {
	return c.senderID
}

// ReceiverID returns the receiving user's identifier.
func (c SendMessageCommand) ReceiverID() kernel.UUID {
	return c.receiverID
}

// Body returns the message text.
func (c SendMessageCommand) Body() string {
	return c.body
}

func (c *SendMessageCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *SendMessageCommand) setReceiverID(receiverID kernel.UUID) error {
	if err := receiverID.Validate(); err != nil {
		return err
	}

	c.receiverID = receiverID
	return nil
}

func (c *SendMessageCommand) setBody(body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("message")
	}

	c.body = body
	return nil
}
