package jobpost

import (
	"errors"
	"fmt"
	"time"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
)

// ErrJobPostIsNotConstructed is returned when a JobPost instance was not
// created through NewJobPost or RestoreJobPost. This ensures all job posts
// are properly validated.
var ErrJobPostIsNotConstructed = errors.New("JobPost must be created via NewJobPost or RestoreJobPost")

// DeliveryStatus tracks the checkout report delivery sub-state of a completed
// job post. A post is marked DeliveryPending before the render-and-email
// pipeline runs and DeliveryDelivered once the report reached the admin
// recipient, so a failed delivery can be retried by the background sweep
// instead of being silently lost.
type DeliveryStatus int

const (
	// DeliveryNone means the post has not been checked out.
	DeliveryNone DeliveryStatus = iota

	// DeliveryPending means the post was checked out but its report has not
	// been delivered yet.
	DeliveryPending

	// DeliveryDelivered means the checkout report was emailed successfully.
	DeliveryDelivered
)

func (d DeliveryStatus) String() string {
	switch d {
	case DeliveryPending:
		return "pending"
	case DeliveryDelivered:
		return "delivered"
	default:
		return ""
	}
}

// DeliveryStatusFromString parses the persisted representation of a delivery status.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	switch s {
	case "":
		return DeliveryNone, nil
	case "pending":
		return DeliveryPending, nil
	case "delivered":
		return DeliveryDelivered, nil
	default:
		return DeliveryNone, errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%q is not a valid delivery status", s))
	}
}

// Details holds the scheduling attributes of a job post. All attributes except
// TemplateName are required at creation and are replaced wholesale by the
// generic update operation.
type Details struct {
	Date         string
	Shift        string
	Location     string
	StartTime    string
	EndTime      string
	Description  string
	Payment      string
	TemplateName string
	IsTemplate   bool
}

// Validate checks that the attributes form a usable post. Live posts need the
// full set of scheduling fields; templates only need a template name, since
// their remaining fields are filled in when a post is created from them.
func (d Details) Validate() error {
	if d.IsTemplate {
		if d.TemplateName == "" {
			return errs.NewValueIsRequiredError("templateName")
		}
		return nil
	}

	required := map[string]string{
		"date":        d.Date,
		"shift":       d.Shift,
		"location":    d.Location,
		"startTime":   d.StartTime,
		"endTime":     d.EndTime,
		"description": d.Description,
		"payment":     d.Payment,
	}
	for name, value := range required {
		if value == "" {
			return errs.NewValueIsRequiredError(name)
		}
	}
	return nil
}

// CheckoutDetails holds the fields recorded at checkout time. PerformedBy is
// the name of the worker filing the report; the remaining fields are optional.
// The signature, when present, is an image payload of the form
// "data:image/<format>;base64,<data>".
type CheckoutDetails struct {
	PerformedBy   string
	Signature     string
	Notes         string
	PatientWeight string
	Temperature   string
	BloodPressure string
	ContactNumber string
}

// JobPost is the aggregate root for a schedulable work assignment. It manages
// the lifecycle from creation through acceptance, check-in, and checkout.
//
// JobPost maintains these invariants:
//   - Must have a valid identifier, poster, and CRID
//   - Required scheduling attributes are non-empty
//   - Status only advances through the transitions defined by Status
//   - checkInTime precedes checkedOutTime whenever both are present
//   - The CRID is immutable once assigned
type JobPost struct {
	id     kernel.UUID
	crid   string
	poster kernel.UUID

	details Details

	status         Status
	assignedTo     *kernel.UUID
	checkInTime    *time.Time
	checkedOutTime *time.Time

	checkedOut bool
	checkout   CheckoutDetails
	delivery   DeliveryStatus

	createdAt time.Time

	isConstructed bool
}

// NewJobPost creates a new job post in Open status with validation. This is
// the only way to create a live post; RestoreJobPost exists for persistence.
func NewJobPost(id, poster kernel.UUID, crid string, details Details, createdAt time.Time) (*JobPost, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := poster.Validate(); err != nil {
		return nil, err
	}
	if crid == "" {
		return nil, errs.NewValueIsRequiredError("crid")
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	return &JobPost{
		id:            id,
		crid:          crid,
		poster:        poster,
		details:       details,
		status:        Open,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreJobPost reconstructs a job post from persistence without applying
// creation-time rules. The stored status and timestamps are taken as-is.
func RestoreJobPost(
	id, poster kernel.UUID,
	crid string,
	details Details,
	status Status,
	assignedTo *kernel.UUID,
	checkInTime, checkedOutTime *time.Time,
	checkedOut bool,
	checkout CheckoutDetails,
	delivery DeliveryStatus,
	createdAt time.Time,
) (*JobPost, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &JobPost{
		id:             id,
		crid:           crid,
		poster:         poster,
		details:        details,
		status:         status,
		assignedTo:     assignedTo,
		checkInTime:    checkInTime,
		checkedOutTime: checkedOutTime,
		checkedOut:     checkedOut,
		checkout:       checkout,
		delivery:       delivery,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the JobPost instance was properly constructed.
func (j *JobPost) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobPostIsNotConstructed
	}
	return nil
}

// IsEqual compares two job posts by their unique identifiers.
func (j *JobPost) IsEqual(other *JobPost) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job post's unique identifier.
func (j *JobPost) ID() kernel.UUID {
	return j.id
}

// CRID returns the human-readable sequence-derived code.
func (j *JobPost) CRID() string {
	return j.crid
}

// Poster returns the identifier of the user who created the post.
func (j *JobPost) Poster() kernel.UUID {
	return j.poster
}

// Details returns the scheduling attributes.
func (j *JobPost) Details() Details {
	return j.details
}

// Status returns the current lifecycle status.
func (j *JobPost) Status() Status {
	return j.status
}

// AssignedTo returns the accepting worker's identifier, or nil if unassigned.
func (j *JobPost) AssignedTo() *kernel.UUID {
	return j.assignedTo
}

// CheckInTime returns the check-in timestamp, or nil when not checked in.
func (j *JobPost) CheckInTime() *time.Time {
	return j.checkInTime
}

// CheckedOutTime returns the checkout timestamp, or nil when not checked out.
func (j *JobPost) CheckedOutTime() *time.Time {
	return j.checkedOutTime
}

// CheckedOut reports whether the post has been checked out.
func (j *JobPost) CheckedOut() bool {
	return j.checkedOut
}

// Checkout returns the fields recorded at checkout.
func (j *JobPost) Checkout() CheckoutDetails {
	return j.checkout
}

// Delivery returns the checkout report delivery sub-state.
func (j *JobPost) Delivery() DeliveryStatus {
	return j.delivery
}

// CreatedAt returns the creation timestamp.
func (j *JobPost) CreatedAt() time.Time {
	return j.createdAt
}

// Accept assigns the post to a worker and moves it to Upcoming.
// Only posts in Open status can be accepted; any other status yields a
// StatusConflictError and no mutation.
func (j *JobPost) Accept(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	newStatus, err := j.status.Accept()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.assignedTo = &workerID
	return nil
}

// CheckIn moves an Upcoming post to CheckedIn and records the check-in time.
func (j *JobPost) CheckIn(now time.Time) error {
	newStatus, err := j.status.CheckIn()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.checkInTime = &now
	return nil
}

// CheckOut completes the post, records the checkout time and details, and
// marks the report delivery pending. There is no status precondition, but
// timestamps must stay ordered: a checkout before the recorded check-in time
// is rejected.
func (j *JobPost) CheckOut(now time.Time, details CheckoutDetails) error {
	newStatus, err := j.status.CheckOut()
	if err != nil {
		return err
	}
	if j.checkInTime != nil && now.Before(*j.checkInTime) {
		return errs.NewValueIsInvalidErrorWithCause("checkedOutTime",
			fmt.Errorf("checkout at %s precedes check-in at %s", now.Format(time.RFC3339), j.checkInTime.Format(time.RFC3339)))
	}

	j.status = newStatus
	j.checkedOut = true
	j.checkedOutTime = &now
	j.checkout = details
	j.delivery = DeliveryPending
	return nil
}

// MarkDelivered records that the checkout report reached the admin recipient.
func (j *JobPost) MarkDelivered() error {
	if j.delivery != DeliveryPending {
		return errs.NewStatusConflictError(j.delivery.String(), "mark delivered")
	}
	j.delivery = DeliveryDelivered
	return nil
}

// ReplaceDetails replaces all scheduling attributes (full-document update).
func (j *JobPost) ReplaceDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	j.details = details
	return nil
}

// ChangeStatus applies a direct status change, as requested through the
// generic update operation. The change is validated against the forward-only
// transition table; anything else yields a StatusConflictError.
func (j *JobPost) ChangeStatus(next Status) error {
	if err := j.status.CanTransitionTo(next); err != nil {
		return err
	}
	j.status = next
	return nil
}
