package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"staffing/internal/core/application/usecases/commands"
)

// DeliverySweepJob retries checkout reports whose email delivery failed.
// Runs every minute; a completed post stays pending until its report lands.
type DeliverySweepJob struct {
	handler commands.RetryPendingDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliverySweepJob creates the sweep job around the retry handler.
func NewDeliverySweepJob(handler commands.RetryPendingDeliveriesCommandHandler, logger *slog.Logger) *DeliverySweepJob {
	return &DeliverySweepJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delivery_sweep_job"),
	}
}

// Start begins the sweep on a per-minute schedule.
func (j *DeliverySweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRetryPendingDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery sweep job started (running every minute)")
	return nil
}

// Stop stops the sweep job.
func (j *DeliverySweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery sweep job stopped")
}
