package jobpostrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
)

// GormJobPostRepository implements JobPostRepository using GORM.
type GormJobPostRepository struct {
	db *gorm.DB
}

// NewGormJobPostRepository creates a new GORM job-post repository.
func NewGormJobPostRepository(db *gorm.DB) *GormJobPostRepository {
	return &GormJobPostRepository{db: db}
}

// Add saves a new job post to the database.
func (r *GormJobPostRepository) Add(ctx context.Context, aggregate *jobpost.JobPost) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing job post to the database. All columns are
// written, so cleared fields are cleared in storage too.
func (r *GormJobPostRepository) Update(ctx context.Context, aggregate *jobpost.JobPost) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&JobPostDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("jobPost", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a job post by ID.
func (r *GormJobPostRepository) Get(ctx context.Context, id kernel.UUID) (*jobpost.JobPost, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobPostDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("jobPost", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a job post by ID. Deleting a missing id is not an error.
func (r *GormJobPostRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&JobPostDTO{}, "id = ?", id.Bytes()).Error
}

// GetAllPendingDelivery retrieves completed posts whose checkout report has
// not been delivered yet.
func (r *GormJobPostRepository) GetAllPendingDelivery(ctx context.Context) ([]*jobpost.JobPost, error) {
	var dtos []JobPostDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND delivery_status = ?",
			jobpost.Completed.String(), jobpost.DeliveryPending.String()).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*jobpost.JobPost, 0, len(dtos))
	for _, dto := range dtos {
		post, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		posts = append(posts, post)
	}

	return posts, nil
}
