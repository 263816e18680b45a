package commands

import (
	"errors"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/guard"
)

var ErrAcceptJobPostCommandIsNotConstructed = errors.New(
	"AcceptJobPostCommand must be created via NewAcceptJobPostCommand constructor",
)

// AcceptJobPostCommand represents a worker's request to take an open post.
type AcceptJobPostCommand struct { //nolint:recvcheck //using for validation
	jobPostID kernel.UUID
	workerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptJobPostCommand creates a command for a worker to accept a post.
func NewAcceptJobPostCommand(jobPostID, workerID kernel.UUID) (AcceptJobPostCommand, error) {
	cmd := AcceptJobPostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobPostID(jobPostID),
		cmd.setWorkerID(workerID),
	); err != nil {
		return AcceptJobPostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptJobPostCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobPostCommandIsNotConstructed)
}

// JobPostID returns the identifier of the post being accepted.
func (c AcceptJobPostCommand) JobPostID() kernel.UUID {
	return c.jobPostID
}

// WorkerID returns the identifier of the accepting worker.
func (c AcceptJobPostCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *AcceptJobPostCommand) setJobPostID(jobPostID kernel.UUID) error {
	if err := jobPostID.Validate(); err != nil {
		return err
	}

	c.jobPostID = jobPostID
	return nil
}

func (c *AcceptJobPostCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
