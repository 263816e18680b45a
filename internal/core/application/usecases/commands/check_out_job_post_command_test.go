package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
)

func TestNewCheckOutJobPostCommand_Success(t *testing.T) {
	cmd, err := commands.NewCheckOutJobPostCommand(kernel.NewUUID(), "Jane Doe", jobpost.CheckoutDetails{
		Notes: "All vitals recorded",
	})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, "Jane Doe", cmd.PerformedBy())
}

func TestNewCheckOutJobPostCommand_PerformerNameIsRequired(t *testing.T) {
	_, err := commands.NewCheckOutJobPostCommand(kernel.NewUUID(), "", jobpost.CheckoutDetails{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCheckOutJobPostCommand_EmptyDetailsAreAllowed(t *testing.T) {
	cmd, err := commands.NewCheckOutJobPostCommand(kernel.NewUUID(), "Jane Doe", jobpost.CheckoutDetails{})
	require.NoError(t, err)
	require.Empty(t, cmd.Details().Signature)
}
