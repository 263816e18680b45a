// Package jobs provides scheduled background tasks. The single job here is
// the delivery sweep, which re-sends checkout reports that failed to email
// on the request path.
package jobs

import (
	"fmt"
	"log/slog"

	"staffing/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	deliverySweepJob *DeliverySweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	retryDeliveriesHandler commands.RetryPendingDeliveriesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliverySweepJob: NewDeliverySweepJob(retryDeliveriesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.deliverySweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliverySweepJob.Stop()
}
