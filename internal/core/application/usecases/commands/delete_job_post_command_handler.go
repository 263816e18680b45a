package commands

import (
	"context"
)

// DeleteJobPostCommandHandler removes posts and templates by id.
type DeleteJobPostCommandHandler struct {
	uowFactory JobPostUoWFactory
}

// NewDeleteJobPostCommandHandler creates a handler for delete operations.
func NewDeleteJobPostCommandHandler(uowFactory JobPostUoWFactory) DeleteJobPostCommandHandler {
	return DeleteJobPostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command. Deleting an id that does not exist is
// a no-op success, so retried deletes stay safe.
func (h *DeleteJobPostCommandHandler) Handle(ctx context.Context, cmd DeleteJobPostCommand) error {
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

	if err := uow.JobPostRepository().Delete(ctx, cmd.JobPostID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
