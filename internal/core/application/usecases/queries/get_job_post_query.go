package queries

import (
	"errors"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/guard"
)

var ErrGetJobPostQueryIsNotConstructed = errors.New(
	"GetJobPostQuery must be created via NewGetJobPostQuery constructor",
)

// GetJobPostQuery retrieves a single job post or template by id.
type GetJobPostQuery struct {
	jobPostID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobPostQuery creates a query to fetch one post by id.
func NewGetJobPostQuery(jobPostID kernel.UUID) (GetJobPostQuery, error) {
	if err := jobPostID.Validate(); err != nil {
		return GetJobPostQuery{}, err
	}

	return GetJobPostQuery{
		jobPostID: jobPostID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobPostQuery) Validate() error {
	return q.guard.Validate(ErrGetJobPostQueryIsNotConstructed)
}

// JobPostID returns the identifier of the requested post.
func (q GetJobPostQuery) JobPostID() kernel.UUID {
	return q.jobPostID
}
