// Package queries contains read-only operations executed directly against
// the database. Query handlers bypass the domain model and repositories;
// they scan rows into plain response structs for the HTTP layer.
package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"staffing/internal/core/domain/model/kernel"
)

// jobPostColumns is the select list shared by every job-post query. It must
// stay in sync with the job_posts table mapped by the repository layer.
const jobPostColumns = `
	id,
	crid,
	poster_id,
	date,
	shift,
	location,
	start_time,
	end_time,
	description,
	payment,
	template_name,
	is_template,
	status,
	assigned_to,
	check_in_time,
	checked_out_time,
	checked_out,
	performed_by,
	signature,
	notes,
	patient_weight,
	temperature,
	blood_pressure,
	contact_number,
	delivery_status,
	created_at
`

// JobPostResponse is the full read model of one job post or template.
type JobPostResponse struct {
	ID             kernel.UUID
	CRID           string
	PosterID       kernel.UUID
	Date           string
	Shift          string
	Location       string
	StartTime      string
	EndTime        string
	Description    string
	Payment        string
	TemplateName   string
	IsTemplate     bool
	Status         string
	AssignedTo     *kernel.UUID
	CheckInTime    *time.Time
	CheckedOutTime *time.Time
	CheckedOut     bool
	PerformedBy    string
	Signature      string
	Notes          string
	PatientWeight  string
	Temperature    string
	BloodPressure  string
	ContactNumber  string
	DeliveryStatus string
	CreatedAt      time.Time
}

// scanJobPostRows drains rows selected with jobPostColumns into responses.
func scanJobPostRows(rows *sql.Rows) ([]JobPostResponse, error) {
	defer rows.Close()

	posts := make([]JobPostResponse, 0)
	for rows.Next() {
		post, err := scanJobPostRow(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func scanJobPostRow(rows *sql.Rows) (JobPostResponse, error) {
	var post JobPostResponse
	var id, posterID uuid.UUID
	var assignedTo uuid.NullUUID
	var checkInTime, checkedOutTime sql.NullTime

	err := rows.Scan(
		&id,
		&post.CRID,
		&posterID,
		&post.Date,
		&post.Shift,
		&post.Location,
		&post.StartTime,
		&post.EndTime,
		&post.Description,
		&post.Payment,
		&post.TemplateName,
		&post.IsTemplate,
		&post.Status,
		&assignedTo,
		&checkInTime,
		&checkedOutTime,
		&post.CheckedOut,
		&post.PerformedBy,
		&post.Signature,
		&post.Notes,
		&post.PatientWeight,
		&post.Temperature,
		&post.BloodPressure,
		&post.ContactNumber,
		&post.DeliveryStatus,
		&post.CreatedAt,
	)
	if err != nil {
		return JobPostResponse{}, err
	}

	post.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return JobPostResponse{}, err
	}

	post.PosterID, err = kernel.UUIDFromBytes(posterID[:])
	if err != nil {
		return JobPostResponse{}, err
	}

	if assignedTo.Valid {
		workerID, idErr := kernel.UUIDFromBytes(assignedTo.UUID[:])
		if idErr != nil {
			return JobPostResponse{}, idErr
		}
		post.AssignedTo = &workerID
	}
	if checkInTime.Valid {
		t := checkInTime.Time
		post.CheckInTime = &t
	}
	if checkedOutTime.Valid {
		t := checkedOutTime.Time
		post.CheckedOutTime = &t
	}

	return post, nil
}

// UserResponse is the read model of a user account. The password hash is
// deliberately absent.
type UserResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Role      string
	Verified  bool
	CreatedAt time.Time
}

// ProfileResponse is the read model of a user's profile fields.
type ProfileResponse struct {
	UserID         kernel.UUID
	Address        string
	City           string
	Pincode        string
	Phone          string
	Qualifications string
	Skills         string
	IDOptions      string
}

// MessageResponse is the read model of one direct message.
type MessageResponse struct {
	ID       kernel.UUID
	Sender   kernel.UUID
	Receiver kernel.UUID
	Body     string
	SentAt   time.Time
}

// NotificationResponse is the read model of one stored notification.
type NotificationResponse struct {
	ID     kernel.UUID
	UserID kernel.UUID
	Title  string
	Body   string
	Date   time.Time
}
