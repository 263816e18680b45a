package commands

import (
	"errors"

	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/guard"
)

var ErrUpdateJobPostCommandIsNotConstructed = errors.New(
	"UpdateJobPostCommand must be created via NewUpdateJobPostCommand constructor",
)

// UpdateJobPostCommand represents a full replacement of a post's scheduling
// attributes, optionally paired with a status change. The status change is
// validated against the lifecycle transitions rather than written verbatim.
type UpdateJobPostCommand struct { //nolint:recvcheck //using for validation
	jobPostID kernel.UUID
	details   jobpost.Details
	status    *jobpost.Status

	guard guard.ConstructorGuard
}

// NewUpdateJobPostCommand creates a command to replace a post's details.
// status is optional; pass nil to leave the lifecycle status untouched.
func NewUpdateJobPostCommand(
	jobPostID kernel.UUID,
	details jobpost.Details,
	status *jobpost.Status,
) (UpdateJobPostCommand, error) {
	cmd := UpdateJobPostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobPostID(jobPostID),
		cmd.setDetails(details),
		cmd.setStatus(status),
	); err != nil {
		return UpdateJobPostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateJobPostCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobPostCommandIsNotConstructed)
}

// JobPostID returns the identifier of the post being updated.
func (c UpdateJobPostCommand) JobPostID() kernel.UUID {
	return c.jobPostID
}

// Details returns the replacement scheduling attributes.
func (c UpdateJobPostCommand) Details() jobpost.Details {
	return c.details
}

// Status returns the requested status change, or nil when none was requested.
func (c UpdateJobPostCommand) Status() *jobpost.Status {
	return c.status
}

func (c *UpdateJobPostCommand) setJobPostID(jobPostID kernel.UUID) error {
	if err := jobPostID.Validate(); err != nil {
		return err
	}

	c.jobPostID = jobPostID
	return nil
}

func (c *UpdateJobPostCommand) setDetails(details jobpost.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}

func (c *UpdateJobPostCommand) setStatus(status *jobpost.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
