package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetJobPostsQueryHandler lists job posts or templates from the database.
type GetJobPostsQueryHandler struct {
	db *gorm.DB
}

// NewGetJobPostsQueryHandler creates a handler for job post listing.
func NewGetJobPostsQueryHandler(db *gorm.DB) GetJobPostsQueryHandler {
	return GetJobPostsQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted by creation time with the
// newest post first.
func (h GetJobPostsQueryHandler) Handle(ctx context.Context, query GetJobPostsQuery) ([]JobPostResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobPostColumns+`
		FROM job_posts
		WHERE is_template = ?
		ORDER BY created_at DESC
	`, query.IsTemplate()).Rows()
	if err != nil {
		return nil, err
	}

	return scanJobPostRows(rows)
}
