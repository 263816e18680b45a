package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetJobPostsByDateQueryHandler lists live posts for one calendar date.
type GetJobPostsByDateQueryHandler struct {
	db *gorm.DB
}

// NewGetJobPostsByDateQueryHandler creates a handler for date lookups.
func NewGetJobPostsByDateQueryHandler(db *gorm.DB) GetJobPostsByDateQueryHandler {
	return GetJobPostsByDateQueryHandler{db: db}
}

// Handle executes the lookup, newest first. Templates are excluded.
func (h GetJobPostsByDateQueryHandler) Handle(
	ctx context.Context,
	query GetJobPostsByDateQuery,
) ([]JobPostResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobPostColumns+`
		FROM job_posts
		WHERE date = ? AND is_template = false
		ORDER BY created_at DESC
	`, query.Date()).Rows()
	if err != nil {
		return nil, err
	}

	return scanJobPostRows(rows)
}
