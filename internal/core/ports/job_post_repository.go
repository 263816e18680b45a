package ports

import (
	"context"

	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/kernel"
)

// JobPostRepository defines the persistence contract for job-post aggregates.
type JobPostRepository interface {
	// Add persists a new job-post aggregate to storage.
	Add(ctx context.Context, aggregate *jobpost.JobPost) error

	// Update persists changes to an existing job-post aggregate.
	Update(ctx context.Context, aggregate *jobpost.JobPost) error

	// Get retrieves a job post by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*jobpost.JobPost, error)

	// Delete removes a job post by id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllPendingDelivery retrieves completed job posts whose checkout
	// report has not been delivered yet. Used by the delivery sweep.
	GetAllPendingDelivery(ctx context.Context) ([]*jobpost.JobPost, error)
}
