package ports

import (
	"context"

	"staffing/internal/core/domain/model/jobpost"
)

// CheckoutRenderer produces the checkout report artifact for a completed
// job post and returns the path of the generated file. The caller owns the
// file and is responsible for removing it after use.
type CheckoutRenderer interface {
	RenderCheckoutReport(ctx context.Context, post *jobpost.JobPost) (string, error)
}
