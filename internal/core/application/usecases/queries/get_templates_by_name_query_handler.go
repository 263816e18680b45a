package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetTemplatesByNameQueryHandler lists templates matching an exact name.
type GetTemplatesByNameQueryHandler struct {
	db *gorm.DB
}

// NewGetTemplatesByNameQueryHandler creates a handler for template lookups.
func NewGetTemplatesByNameQueryHandler(db *gorm.DB) GetTemplatesByNameQueryHandler {
	return GetTemplatesByNameQueryHandler{db: db}
}

// Handle executes the lookup, newest first.
func (h GetTemplatesByNameQueryHandler) Handle(
	ctx context.Context,
	query GetTemplatesByNameQuery,
) ([]JobPostResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobPostColumns+`
		FROM job_posts
		WHERE is_template = true AND template_name = ?
		ORDER BY created_at DESC
	`, query.TemplateName()).Rows()
	if err != nil {
		return nil, err
	}

	return scanJobPostRows(rows)
}
