package commands

import (
	"errors"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/guard"
)

var ErrCheckInJobPostCommandIsNotConstructed = errors.New(
	"CheckInJobPostCommand must be created via NewCheckInJobPostCommand constructor",
)

// CheckInJobPostCommand represents a worker arriving at an upcoming shift.
type CheckInJobPostCommand struct { //nolint:recvcheck //using for validation
	jobPostID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckInJobPostCommand creates a command to check in to a post.
func NewCheckInJobPostCommand(jobPostID kernel.UUID) (CheckInJobPostCommand, error) {
	cmd := CheckInJobPostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJobPostID(jobPostID); err != nil {
		return CheckInJobPostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckInJobPostCommand) Validate() error {
	return c.guard.Validate(ErrCheckInJobPostCommandIsNotConstructed)
}

// JobPostID returns the identifier of the post being checked in to.
func (c CheckInJobPostCommand) JobPostID() kernel.UUID {
	return c.jobPostID
}

func (c *CheckInJobPostCommand) setJobPostID(jobPostID kernel.UUID) error {
	if err := jobPostID.Validate(); err != nil {
		return err
	}

	c.jobPostID = jobPostID
	return nil
}
