package commands

import (
	"context"
)

// UpdateProfileCommandHandler upserts the caller's profile record.
type UpdateProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory ProfileUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update. The first update creates the record;
// later ones replace it.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profile := cmd.Profile()
	if err := uow.ProfileRepository().Upsert(ctx, &profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
