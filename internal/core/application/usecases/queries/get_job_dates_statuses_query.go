package queries

import (
	"errors"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/guard"
)

var ErrGetJobDatesStatusesQueryIsNotConstructed = errors.New(
	"GetJobDatesStatusesQuery must be created via NewGetJobDatesStatusesQuery constructor",
)

// GetJobDatesStatusesQuery retrieves the id, date and status of every live
// post. Feeds the calendar view, which needs the whole board but none of the
// shift details.
type GetJobDatesStatusesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetJobDatesStatusesQuery creates a query for the calendar projection.
// This is a parameterless query.
func NewGetJobDatesStatusesQuery() GetJobDatesStatusesQuery {
	return GetJobDatesStatusesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetJobDatesStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetJobDatesStatusesQueryIsNotConstructed)
}

// JobDateStatusResponse is one calendar entry: which post, on which date, in
// which status.
type JobDateStatusResponse struct {
	ID     kernel.UUID
	Date   string
	Status string
}
