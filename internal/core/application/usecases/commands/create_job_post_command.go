package commands

import (
	"errors"

	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/guard"
)

var ErrCreateJobPostCommandIsNotConstructed = errors.New(
	"CreateJobPostCommand must be created via NewCreateJobPostCommand constructor",
)

// CreateJobPostCommand represents a request to publish a new job post.
// Carries the full shift details plus the id of the posting user.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	cmd, err := NewCreateJobPostCommand(jobID, posterID, details)
//	if err != nil {
//	    return fmt.Errorf("invalid job post data: %w", err)
//	}
//
//	handler := NewCreateJobPostCommandHandler(uowFactory, sequences, broadcaster, logger)
//	post, err := handler.Handle(ctx, cmd)
type CreateJobPostCommand struct { //nolint:recvcheck //using for validation
	jobPostID kernel.UUID
	posterID  kernel.UUID
	details   jobpost.Details

	guard guard.ConstructorGuard
}

// NewCreateJobPostCommand creates a command to publish a new job post.
// Validates both ids and the shift details. Returns an error if any
// validation fails.
func NewCreateJobPostCommand(
	jobPostID kernel.UUID,
	posterID kernel.UUID,
	details jobpost.Details,
) (CreateJobPostCommand, error) {
	cmd := CreateJobPostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobPostID(jobPostID),
		cmd.setPosterID(posterID),
		cmd.setDetails(details),
	); err != nil {
		return CreateJobPostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateJobPostCommandIsNotConstructed if validation fails.
func (c CreateJobPostCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobPostCommandIsNotConstructed)
}

// JobPostID returns the unique identifier for the new job post.
func (c CreateJobPostCommand) JobPostID() kernel.UUID {
	return c.jobPostID
}

// PosterID returns the id of the user publishing the post.
func (c CreateJobPostCommand) PosterID() kernel.UUID {
	return c.posterID
}

// Details returns the shift details of the new post.
func (c CreateJobPostCommand) Details() jobpost.Details {
	return c.details
}

func (c *CreateJobPostCommand) setJobPostID(jobPostID kernel.UUID) error {
	if err := jobPostID.Validate(); err != nil {
		return err
	}

	c.jobPostID = jobPostID
	return nil
}

func (c *CreateJobPostCommand) setPosterID(posterID kernel.UUID) error {
	if err := posterID.Validate(); err != nil {
		return err
	}

	c.posterID = posterID
	return nil
}

func (c *CreateJobPostCommand) setDetails(details jobpost.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
