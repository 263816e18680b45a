package commands

import (
	"context"
	"log/slog"
	"time"

	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/ports"
)

// CreateJobPostCommandHandler handles the business logic for publishing posts.
// Allocates the next CRID from the shared sequence, persists the post and
// announces it to subscribed workers.
type CreateJobPostCommandHandler struct {
	uowFactory  JobPostUoWFactory
	sequences   ports.SequenceGenerator
	broadcaster ports.Broadcaster
	logger      *slog.Logger
}

// NewCreateJobPostCommandHandler creates a handler for job post creation.
func NewCreateJobPostCommandHandler(
	uowFactory JobPostUoWFactory,
	sequences ports.SequenceGenerator,
	broadcaster ports.Broadcaster,
	logger *slog.Logger,
) CreateJobPostCommandHandler {
	return CreateJobPostCommandHandler{
		uowFactory:  uowFactory,
		sequences:   sequences,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Handle processes the job post creation command.
// A CRID is assigned from the "jobpostId" sequence before the transaction so
// concurrent creations never share one. The broadcast runs after commit and is
// best effort: a failed announcement is logged but never fails the creation.
func (h *CreateJobPostCommandHandler) Handle(ctx context.Context, cmd CreateJobPostCommand) (*jobpost.JobPost, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	seq, err := h.sequences.Next(ctx, jobpost.SequenceName)
	if err != nil {
		return nil, err
	}

	post, err := jobpost.NewJobPost(cmd.JobPostID(), cmd.PosterID(), jobpost.FormatCRID(seq), cmd.Details(), time.Now())
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

	if err = uow.JobPostRepository().Add(ctx, post); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	details := post.Details()
	event := ports.JobPostedEvent{
		JobPostID: post.ID().String(),
		CRID:      post.CRID(),
		Title:     "New Job Posted!",
		Body: "A new job post has been created. Shift: " + details.Shift +
			", Location: " + details.Location + ", JobDescription: " + details.Description,
		Shift:       details.Shift,
		Location:    details.Location,
		Description: details.Description,
	}
	if err = h.broadcaster.BroadcastJobPosted(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to broadcast job post",
			slog.String("jobPostID", post.ID().String()),
			slog.Any("error", err))
	}

	return post, nil
}
