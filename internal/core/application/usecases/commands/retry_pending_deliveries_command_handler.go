package commands

import (
	"context"
	"log/slog"
)

// RetryPendingDeliveriesCommandHandler sweeps completed posts whose checkout
// report is still pending and runs the delivery step for each one.
type RetryPendingDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	delivery   CheckoutDelivery
	logger     *slog.Logger
}

// NewRetryPendingDeliveriesCommandHandler creates a handler for the sweep.
func NewRetryPendingDeliveriesCommandHandler(
	uowFactory DeliveryUoWFactory,
	delivery CheckoutDelivery,
	logger *slog.Logger,
) RetryPendingDeliveriesCommandHandler {
	return RetryPendingDeliveriesCommandHandler{
		uowFactory: uowFactory,
		delivery:   delivery,
		logger:     logger,
	}
}

// Handle processes the sweep command. Each pending post is delivered
// independently: one failed report is logged and skipped so the rest of the
// batch still goes out.
func (h *RetryPendingDeliveriesCommandHandler) Handle(ctx context.Context, cmd RetryPendingDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	pending, err := uow.JobPostRepository().GetAllPendingDelivery(ctx)
	rollbackErr := uow.Rollback(ctx)
	if err != nil {
		return err
	}
	if rollbackErr != nil {
		return rollbackErr
	}

	for _, post := range pending {
		if err := h.delivery.Deliver(ctx, post); err != nil {
			h.logger.WarnContext(ctx, "pending checkout report delivery failed",
				slog.String("jobPostID", post.ID().String()),
				slog.Any("error", err))
		}
	}

	return nil
}
