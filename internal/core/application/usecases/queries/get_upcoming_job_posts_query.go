package queries

import (
	"errors"

	"staffing/internal/pkg/guard"
)

var ErrGetUpcomingJobPostsQueryIsNotConstructed = errors.New(
	"GetUpcomingJobPostsQuery must be created via NewGetUpcomingJobPostsQuery constructor",
)

// GetUpcomingJobPostsQuery retrieves all accepted posts awaiting check-in.
type GetUpcomingJobPostsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUpcomingJobPostsQuery creates a query listing upcoming posts.
// This is a parameterless query.
func NewGetUpcomingJobPostsQuery() GetUpcomingJobPostsQuery {
	return GetUpcomingJobPostsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUpcomingJobPostsQuery) Validate() error {
	return q.guard.Validate(ErrGetUpcomingJobPostsQueryIsNotConstructed)
}
