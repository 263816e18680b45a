package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"staffing/internal/core/domain/model/kernel"
)

// GetJobDatesStatusesQueryHandler builds the calendar projection.
type GetJobDatesStatusesQueryHandler struct {
	db *gorm.DB
}

// NewGetJobDatesStatusesQueryHandler creates a handler for the calendar view.
func NewGetJobDatesStatusesQueryHandler(db *gorm.DB) GetJobDatesStatusesQueryHandler {
	return GetJobDatesStatusesQueryHandler{db: db}
}

// Handle executes the projection over all live posts.
func (h GetJobDatesStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetJobDatesStatusesQuery,
) ([]JobDateStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			date,
			status
		FROM job_posts
		WHERE is_template = false
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]JobDateStatusResponse, 0)
	for rows.Next() {
		var entry JobDateStatusResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &entry.Date, &entry.Status); err != nil {
			return nil, err
		}

		entry.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
