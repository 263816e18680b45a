package queries

import (
	"errors"

	"staffing/internal/pkg/errs"
	"staffing/internal/pkg/guard"
)

var ErrGetJobPostsByDateQueryIsNotConstructed = errors.New(
	"GetJobPostsByDateQuery must be created via NewGetJobPostsByDateQuery constructor",
)

// GetJobPostsByDateQuery retrieves live posts whose date field matches the
// given string exactly. Dates are stored and compared as opaque strings.
type GetJobPostsByDateQuery struct {
	date string

	guard guard.ConstructorGuard
}

// NewGetJobPostsByDateQuery creates a query listing posts on one date.
func NewGetJobPostsByDateQuery(date string) (GetJobPostsByDateQuery, error) {
	if date == "" {
		return GetJobPostsByDateQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetJobPostsByDateQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobPostsByDateQuery) Validate() error {
	return q.guard.Validate(ErrGetJobPostsByDateQueryIsNotConstructed)
}

// Date returns the exact date string to match.
func (q GetJobPostsByDateQuery) Date() string {
	return q.date
}
