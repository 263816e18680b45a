package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
)

func TestAcceptJobPostCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	post := mustNewJobPost(validDetails())
	workerID := kernel.NewUUID()
	cmd, err := commands.NewAcceptJobPostCommand(post.ID(), workerID)
	require.NoError(t, err)

	repo := new(MockJobPostRepository)
	uow := new(MockJobPostUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobPostRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, post.ID()).Return(post, nil).Once(),
		repo.On("Update", mock.Anything, post).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobPostUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptJobPostCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, jobpost.Upcoming, updated.Status())
	require.True(t, updated.AssignedTo().IsEqual(workerID))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptJobPostCommandHandler_Handle_ConflictLeavesPostUntouched(t *testing.T) {
	ctx := t.Context()
	post := mustNewJobPost(validDetails())
	firstWorker := kernel.NewUUID()
	require.NoError(t, post.Accept(firstWorker))

	cmd, err := commands.NewAcceptJobPostCommand(post.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockJobPostRepository)
	uow := new(MockJobPostUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobPostRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, post.ID()).Return(post, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobPostUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptJobPostCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	var conflict *errs.StatusConflictError
	require.ErrorAs(t, err, &conflict)
	require.True(t, post.AssignedTo().IsEqual(firstWorker))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAcceptJobPostCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()
	cmd, err := commands.NewAcceptJobPostCommand(missingID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockJobPostRepository)
	uow := new(MockJobPostUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobPostRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, missingID).
			Return(nil, errs.NewObjectNotFoundError("jobPostID", missingID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobPostUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptJobPostCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
