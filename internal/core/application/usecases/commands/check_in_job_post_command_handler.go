package commands

import (
	"context"
	"time"

	"staffing/internal/core/domain/model/jobpost"
)

// CheckInJobPostCommandHandler records shift arrival on upcoming posts.
type CheckInJobPostCommandHandler struct {
	uowFactory JobPostUoWFactory
}

// NewCheckInJobPostCommandHandler creates a handler for check-in operations.
func NewCheckInJobPostCommandHandler(uowFactory JobPostUoWFactory) CheckInJobPostCommandHandler {
	return CheckInJobPostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the check-in command. Posts that are not upcoming yield a
// StatusConflictError and stay untouched.
func (h *CheckInJobPostCommandHandler) Handle(ctx context.Context, cmd CheckInJobPostCommand) (*jobpost.JobPost, error) {
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

	if err = post.CheckIn(time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, post); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return post, nil
}
