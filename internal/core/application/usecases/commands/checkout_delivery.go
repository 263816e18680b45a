package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/model/notification"
	"staffing/internal/core/ports"
	"staffing/internal/pkg/errs"
)

// ErrAdminRecipientMissing is returned when no admin user exists to receive
// the checkout report.
var ErrAdminRecipientMissing = errors.New("admin recipient not found")

// CheckoutDelivery renders the checkout report for a completed post, emails
// it to the first admin user and marks the post delivered. The report file
// is removed exactly once, whether delivery succeeds or fails.
//
// Checkout and delivery are separate steps: the checkout transaction commits
// first with the post in pending delivery state, so a crash or mail outage
// mid-delivery leaves a pending post for the background sweep to retry
// instead of losing the report.
type CheckoutDelivery struct {
	uowFactory DeliveryUoWFactory
	renderer   ports.CheckoutRenderer
	mailer     ports.Mailer
	logger     *slog.Logger
}

// NewCheckoutDelivery creates the delivery step shared by the checkout
// handler and the pending-delivery sweep.
func NewCheckoutDelivery(
	uowFactory DeliveryUoWFactory,
	renderer ports.CheckoutRenderer,
	mailer ports.Mailer,
	logger *slog.Logger,
) CheckoutDelivery {
	return CheckoutDelivery{
		uowFactory: uowFactory,
		renderer:   renderer,
		mailer:     mailer,
		logger:     logger,
	}
}

// Deliver renders, emails and marks one pending post delivered.
// Returns ErrAdminRecipientMissing when no admin user exists; the rendered
// file is removed before returning in every outcome.
func (d *CheckoutDelivery) Deliver(ctx context.Context, post *jobpost.JobPost) error {
	if err := post.Validate(); err != nil {
		return err
	}

	artifact, err := d.renderer.RenderCheckoutReport(ctx, post)
	if err != nil {
		return err
	}

	defer func() {
		if removeErr := os.Remove(artifact); removeErr != nil && !os.IsNotExist(removeErr) {
			d.logger.WarnContext(ctx, "failed to remove checkout report",
				slog.String("path", artifact),
				slog.Any("error", removeErr))
		}
	}()

	uow := d.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	admin, err := uow.UserRepository().GetFirstAdmin(ctx)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ErrAdminRecipientMissing
		}
		return fmt.Errorf("find admin recipient: %w", err)
	}

	err = d.mailer.SendCheckoutReport(ctx, admin.Email, post.CRID(), post.Checkout().PerformedBy, artifact)
	if err != nil {
		return err
	}

	if err = post.MarkDelivered(); err != nil {
		return err
	}

	if err = uow.JobPostRepository().Update(ctx, post); err != nil {
		return err
	}

	note, err := notification.New(
		kernel.NewUUID(),
		admin.ID,
		"Job Checkout Completed",
		"Checkout report for job "+post.CRID()+" was filed by "+post.Checkout().PerformedBy+".",
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, &note); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
