package messagerepo

import (
	"context"

	"gorm.io/gorm"

	"staffing/internal/core/domain/model/message"
)

// GormMessageRepository implements MessageRepository using GORM.
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GORM message repository.
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// Add saves a new message to the database.
func (r *GormMessageRepository) Add(ctx context.Context, m *message.Message) error {
	dto := fromDomain(m)
	return r.db.WithContext(ctx).Create(&dto).Error
}
