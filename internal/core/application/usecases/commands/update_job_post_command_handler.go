package commands

import (
	"context"

	"staffing/internal/core/domain/model/jobpost"
)

// UpdateJobPostCommandHandler applies the generic edit operation to a post.
type UpdateJobPostCommandHandler struct {
	uowFactory JobPostUoWFactory
}

// NewUpdateJobPostCommandHandler creates a handler for update operations.
func NewUpdateJobPostCommandHandler(uowFactory JobPostUoWFactory) UpdateJobPostCommandHandler {
	return UpdateJobPostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. Details are replaced wholesale. A
// requested status change must follow the lifecycle transitions, so the edit
// endpoint cannot shortcut a post into an arbitrary status.
func (h *UpdateJobPostCommandHandler) Handle(ctx context.Context, cmd UpdateJobPostCommand) (*jobpost.JobPost, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.JobPostRepository()
	post, err := repo.Get(ctx, cmd.JobPostID())
	if err != nil {
		return nil, err
	}

	if err = post.ReplaceDetails(cmd.Details()); err != nil {
		return nil, err
	}

	if status := cmd.Status(); status != nil {
		if err = post.ChangeStatus(*status); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, post); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return post, nil
}
