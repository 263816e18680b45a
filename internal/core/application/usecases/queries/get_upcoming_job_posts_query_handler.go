package queries

import (
	"context"

	"gorm.io/gorm"

	"staffing/internal/core/domain/model/jobpost"
)

// GetUpcomingJobPostsQueryHandler lists posts in upcoming status.
type GetUpcomingJobPostsQueryHandler struct {
	db *gorm.DB
}

// NewGetUpcomingJobPostsQueryHandler creates a handler for upcoming listings.
func NewGetUpcomingJobPostsQueryHandler(db *gorm.DB) GetUpcomingJobPostsQueryHandler {
	return GetUpcomingJobPostsQueryHandler{db: db}
}

// Handle executes the listing, newest first.
func (h GetUpcomingJobPostsQueryHandler) Handle(
	ctx context.Context,
	query GetUpcomingJobPostsQuery,
) ([]JobPostResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobPostColumns+`
		FROM job_posts
		WHERE status = ? AND is_template = false
		ORDER BY created_at DESC
	`, jobpost.Upcoming.String()).Rows()
	if err != nil {
		return nil, err
	}

	return scanJobPostRows(rows)
}
