package queries

import (
	"errors"

	"staffing/internal/pkg/guard"
)

var ErrGetJobPostsQueryIsNotConstructed = errors.New(
	"GetJobPostsQuery must be created via NewGetJobPostsQuery constructor",
)

// GetJobPostsQuery retrieves job posts or templates, newest first.
//
// Example:
//
//	query := NewGetJobPostsQuery(false)
//	handler := NewGetJobPostsQueryHandler(db)
//
//	posts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list job posts: %w", err)
//	}
type GetJobPostsQuery struct {
	isTemplate bool

	guard guard.ConstructorGuard
}

// NewGetJobPostsQuery creates a query listing live posts (false) or
// templates (true).
func NewGetJobPostsQuery(isTemplate bool) GetJobPostsQuery {
	return GetJobPostsQuery{
		isTemplate: isTemplate,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetJobPostsQuery) Validate() error {
	return q.guard.Validate(ErrGetJobPostsQueryIsNotConstructed)
}

// IsTemplate reports whether templates are listed instead of live posts.
func (q GetJobPostsQuery) IsTemplate() bool {
	return q.isTemplate
}
