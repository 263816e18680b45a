package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"staffing/internal/core/domain/model/jobpost"
)

// ErrReportDeliveryFailed wraps errors from the render-and-email step so
// callers can tell them apart from checkout failures. When it is returned
// the post is already completed and queued for the delivery sweep.
var ErrReportDeliveryFailed = errors.New("checkout report delivery failed")

// CheckOutJobPostCommandHandler completes a post and delivers its checkout
// report.
//
// Example:
//
//	handler := NewCheckOutJobPostCommandHandler(uowFactory, delivery, logger)
//	cmd, _ := NewCheckOutJobPostCommand(jobID, "Jane Doe", details)
//	post, err := handler.Handle(ctx, cmd)
type CheckOutJobPostCommandHandler struct {
	uowFactory JobPostUoWFactory
	delivery   CheckoutDelivery
	logger     *slog.Logger
}

// NewCheckOutJobPostCommandHandler creates a handler for checkout operations.
func NewCheckOutJobPostCommandHandler(
	uowFactory JobPostUoWFactory,
	delivery CheckoutDelivery,
	logger *slog.Logger,
) CheckOutJobPostCommandHandler {
	return CheckOutJobPostCommandHandler{
		uowFactory: uowFactory,
		delivery:   delivery,
		logger:     logger,
	}
}

// Handle processes the checkout command in two steps. The post is completed
// and committed first, then the report is rendered and emailed. A delivery
// failure is surfaced to the caller but the checkout itself stands; the
// pending-delivery sweep retries the report later.
func (h *CheckOutJobPostCommandHandler) Handle(ctx context.Context, cmd CheckOutJobPostCommand) (*jobpost.JobPost, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	post, err := h.checkOut(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if err = h.delivery.Deliver(ctx, post); err != nil {
		h.logger.WarnContext(ctx, "checkout report delivery failed",
			slog.String("jobPostID", post.ID().String()),
			slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrReportDeliveryFailed, err)
	}

	return post, nil
}

func (h *CheckOutJobPostCommandHandler) checkOut(ctx context.Context, cmd CheckOutJobPostCommand) (*jobpost.JobPost, error) {
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

	details := cmd.Details()
	details.PerformedBy = cmd.PerformedBy()
	if err = post.CheckOut(time.Now(), details); err != nil {
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
