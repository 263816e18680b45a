package queries

import (
	"context"

	"gorm.io/gorm"

	"staffing/internal/pkg/errs"
)

// GetJobPostQueryHandler fetches one job post by id from the database.
type GetJobPostQueryHandler struct {
	db *gorm.DB
}

// NewGetJobPostQueryHandler creates a handler for single post lookups.
func NewGetJobPostQueryHandler(db *gorm.DB) GetJobPostQueryHandler {
	return GetJobPostQueryHandler{db: db}
}

// Handle executes the lookup. A missing id yields an ObjectNotFoundError.
func (h GetJobPostQueryHandler) Handle(ctx context.Context, query GetJobPostQuery) (JobPostResponse, error) {
	if err := query.Validate(); err != nil {
		return JobPostResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobPostColumns+`
		FROM job_posts
		WHERE id = ?
	`, query.JobPostID().Bytes()).Rows()
	if err != nil {
		return JobPostResponse{}, err
	}

	posts, err := scanJobPostRows(rows)
	if err != nil {
		return JobPostResponse{}, err
	}
	if len(posts) == 0 {
		return JobPostResponse{}, errs.NewObjectNotFoundError("jobPostID", query.JobPostID().String())
	}

	return posts[0], nil
}
