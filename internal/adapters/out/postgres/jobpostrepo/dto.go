// Package jobpostrepo provides data transfer objects and mapping functions
// for job-post persistence. It implements the repository pattern for the
// job-post aggregate, converting between the domain model and the database
// representation.
package jobpostrepo

import (
	"time"

	"github.com/google/uuid"

	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/kernel"
)

// JobPostDTO represents the database structure for persisting job posts.
// Status and delivery status are stored as their string forms so rows stay
// readable in ad-hoc queries.
type JobPostDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	CRID     string    `gorm:"column:crid;uniqueIndex"`
	PosterID uuid.UUID `gorm:"type:uuid;index"`

	Date         string
	Shift        string
	Location     string
	StartTime    string
	EndTime      string
	Description  string
	Payment      string
	TemplateName string `gorm:"index"`
	IsTemplate   bool   `gorm:"index"`

	Status      string     `gorm:"index"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid;index"`
	CheckInTime *time.Time

	CheckedOutTime *time.Time
	CheckedOut     bool
	PerformedBy    string
	Signature      string
	Notes          string
	PatientWeight  string
	Temperature    string
	BloodPressure  string
	ContactNumber  string
	DeliveryStatus string `gorm:"index"`

	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "job_posts".
func (JobPostDTO) TableName() string {
	return "job_posts"
}

// fromDomain converts a job-post aggregate to its database representation.
func fromDomain(post *jobpost.JobPost) JobPostDTO {
	var assignedTo *uuid.UUID
	if id := post.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	details := post.Details()
	checkout := post.Checkout()

	return JobPostDTO{
		ID:             post.ID().Bytes(),
		CRID:           post.CRID(),
		PosterID:       post.Poster().Bytes(),
		Date:           details.Date,
		Shift:          details.Shift,
		Location:       details.Location,
		StartTime:      details.StartTime,
		EndTime:        details.EndTime,
		Description:    details.Description,
		Payment:        details.Payment,
		TemplateName:   details.TemplateName,
		IsTemplate:     details.IsTemplate,
		Status:         post.Status().String(),
		AssignedTo:     assignedTo,
		CheckInTime:    post.CheckInTime(),
		CheckedOutTime: post.CheckedOutTime(),
		CheckedOut:     post.CheckedOut(),
		PerformedBy:    checkout.PerformedBy,
		Signature:      checkout.Signature,
		Notes:          checkout.Notes,
		PatientWeight:  checkout.PatientWeight,
		Temperature:    checkout.Temperature,
		BloodPressure:  checkout.BloodPressure,
		ContactNumber:  checkout.ContactNumber,
		DeliveryStatus: post.Delivery().String(),
		CreatedAt:      post.CreatedAt(),
	}
}

// toDomain converts a database DTO back to a job-post aggregate using
// RestoreJobPost, taking the stored status and timestamps as-is.
func toDomain(dto JobPostDTO) (*jobpost.JobPost, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	posterID, err := kernel.UUIDFromBytes(dto.PosterID[:])
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		workerID, workerErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if workerErr != nil {
			return nil, workerErr
		}

		assignedTo = &workerID
	}

	status, err := jobpost.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	delivery, err := jobpost.DeliveryStatusFromString(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	details := jobpost.Details{
		Date:         dto.Date,
		Shift:        dto.Shift,
		Location:     dto.Location,
		StartTime:    dto.StartTime,
		EndTime:      dto.EndTime,
		Description:  dto.Description,
		Payment:      dto.Payment,
		TemplateName: dto.TemplateName,
		IsTemplate:   dto.IsTemplate,
	}

	checkout := jobpost.CheckoutDetails{
		PerformedBy:   dto.PerformedBy,
		Signature:     dto.Signature,
		Notes:         dto.Notes,
		PatientWeight: dto.PatientWeight,
		Temperature:   dto.Temperature,
		BloodPressure: dto.BloodPressure,
		ContactNumber: dto.ContactNumber,
	}

	return jobpost.RestoreJobPost(
		id,
		posterID,
		dto.CRID,
		details,
		status,
		assignedTo,
		dto.CheckInTime,
		dto.CheckedOutTime,
		dto.CheckedOut,
		checkout,
		delivery,
		dto.CreatedAt,
	)
}
