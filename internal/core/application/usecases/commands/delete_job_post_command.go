package commands

import (
	"errors"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/guard"
)

var ErrDeleteJobPostCommandIsNotConstructed = errors.New(
	"DeleteJobPostCommand must be created via NewDeleteJobPostCommand constructor",
)

// DeleteJobPostCommand represents a request to remove a post or template.
type DeleteJobPostCommand struct { //nolint:recvcheck //using for validation
	jobPostID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteJobPostCommand creates a command to delete a post by id.
func NewDeleteJobPostCommand(jobPostID kernel.UUID) (DeleteJobPostCommand, error) {
	cmd := DeleteJobPostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJobPostID(jobPostID); err != nil {
		return DeleteJobPostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteJobPostCommand) Validate() error {
	return c.guard.Validate(ErrDeleteJobPostCommandIsNotConstructed)
}

// JobPostID returns the identifier of the post to delete.
func (c DeleteJobPostCommand) JobPostID() kernel.UUID {
	return c.jobPostID
}

func (c *DeleteJobPostCommand) setJobPostID(jobPostID kernel.UUID) error {
	if err := jobPostID.Validate(); err != nil {
		return err
	}

	c.jobPostID = jobPostID
	return nil
}
