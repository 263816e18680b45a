package commands

import (
	"errors"

	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
	"staffing/internal/pkg/guard"
)

var ErrCheckOutJobPostCommandIsNotConstructed = errors.New(
	"CheckOutJobPostCommand must be created via NewCheckOutJobPostCommand constructor",
)

// CheckOutJobPostCommand represents the end-of-shift report for a post.
// Carries the free-form vitals and notes captured in the field plus the name
// of the worker filing the report, which ends up on the generated document.
type CheckOutJobPostCommand struct { //nolint:recvcheck //using for validation
	jobPostID   kernel.UUID
	performedBy string
	details     jobpost.CheckoutDetails

	guard guard.ConstructorGuard
}

// NewCheckOutJobPostCommand creates a command to check out of a post.
// The performer name is required; all checkout details are optional.
func NewCheckOutJobPostCommand(
	jobPostID kernel.UUID,
	performedBy string,
	details jobpost.CheckoutDetails,
) (CheckOutJobPostCommand, error) {
	cmd := CheckOutJobPostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobPostID(jobPostID),
		cmd.setPerformedBy(performedBy),
	); err != nil {
		return CheckOutJobPostCommand{}, err
	}

	cmd.details = details
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckOutJobPostCommand) Validate() error {
	return c.guard.Validate(ErrCheckOutJobPostCommandIsNotConstructed)
}

// JobPostID returns the identifier of the post being checked out.
func (c CheckOutJobPostCommand) JobPostID() kernel.UUID {
	return c.jobPostID
}

// PerformedBy returns the name of the worker filing the report.
func (c CheckOutJobPostCommand) PerformedBy() string {
	return c.performedBy
}

// Details returns the checkout details to record.
func (c CheckOutJobPostCommand) Details() jobpost.CheckoutDetails {
	return c.details
}

func (c *CheckOutJobPostCommand) setJobPostID(jobPostID kernel.UUID) error {
	if err := jobPostID.Validate(); err != nil {
		return err
	}

	c.jobPostID = jobPostID
	return nil
}

func (c *CheckOutJobPostCommand) setPerformedBy(performedBy string) error {
	if performedBy == "" {
		return errs.NewValueIsRequiredError("performedBy")
	}

	c.performedBy = performedBy
	return nil
}
