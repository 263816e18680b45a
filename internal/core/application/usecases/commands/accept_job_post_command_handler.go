package commands

import (
	"context"

	"staffing/internal/core/domain/model/jobpost"
)

// AcceptJobPostCommandHandler moves an open post to upcoming and records
// which worker took it.
type AcceptJobPostCommandHandler struct {
	uowFactory JobPostUoWFactory
}

// NewAcceptJobPostCommandHandler creates a handler for accept operations.
func NewAcceptJobPostCommandHandler(uowFactory JobPostUoWFactory) AcceptJobPostCommandHandler {
	return AcceptJobPostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept command. Posts that are not currently open
// yield a StatusConflictError and stay untouched.
func (h *AcceptJobPostCommandHandler) Handle(ctx context.Context, cmd AcceptJobPostCommand) (*jobpost.JobPost, error) {
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

	if err = post.Accept(cmd.WorkerID()); err != nil {
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
