package commands_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/model/notification"
	"staffing/internal/core/domain/model/user"
	"staffing/internal/pkg/errs"
)

func checkedOutPost(t *testing.T) *jobpost.JobPost {
	t.Helper()
	post := mustNewJobPost(validDetails())
	require.NoError(t, post.Accept(kernel.NewUUID()))
	require.NoError(t, post.CheckIn(time.Now().Add(-time.Hour)))
	require.NoError(t, post.CheckOut(time.Now(), jobpost.CheckoutDetails{
		PerformedBy:   "Jane Doe",
		Notes:         "Patient stable",
		PatientWeight: "72kg",
	}))
	return post
}

func writtenArtifact(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "JobCheckout_test.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))
	return path
}

func adminUser() *user.User {
	return &user.User{
		ID:           kernel.NewUUID(),
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: "x",
		Role:         user.RoleAdmin,
		Verified:     true,
		CreatedAt:    time.Now(),
	}
}

func TestCheckoutDelivery_Deliver_Success(t *testing.T) {
	ctx := t.Context()
	post := checkedOutPost(t)
	artifact := writtenArtifact(t)
	admin := adminUser()

	renderer := new(MockRenderer)
	renderer.On("RenderCheckoutReport", mock.Anything, post).Return(artifact, nil).Once()

	mailer := new(MockMailer)
	mailer.On("SendCheckoutReport", mock.Anything, admin.Email, post.CRID(), "Jane Doe", artifact).
		Return(nil).Once()

	jobRepo := new(MockJobPostRepository)
	jobRepo.On("Update", mock.Anything, post).Return(nil).Once()

	userRepo := new(MockUserRepository)
	userRepo.On("GetFirstAdmin", mock.Anything).Return(admin, nil).Once()

	noteRepo := new(MockNotificationRepository)
	noteRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).
		Run(func(args mock.Arguments) {
			note := args.Get(1).(*notification.Notification)
			require.True(t, note.UserID.IsEqual(admin.ID))
			require.Equal(t, "Job Checkout Completed", note.Title)
		}).
		Return(nil).Once()

	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("JobPostRepository").Return(jobRepo).Once()
	uow.On("NotificationRepository").Return(noteRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	d := commands.NewCheckoutDelivery(factory, renderer, mailer, discardLogger())
	require.NoError(t, d.Deliver(ctx, post))
	require.Equal(t, jobpost.DeliveryDelivered, post.Delivery())

	_, statErr := os.Stat(artifact)
	require.True(t, os.IsNotExist(statErr), "report file must be removed after delivery")

	renderer.AssertExpectations(t)
	mailer.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	noteRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutDelivery_Deliver_AdminMissing(t *testing.T) {
	ctx := t.Context()
	post := checkedOutPost(t)
	artifact := writtenArtifact(t)

	renderer := new(MockRenderer)
	renderer.On("RenderCheckoutReport", mock.Anything, post).Return(artifact, nil).Once()

	userRepo := new(MockUserRepository)
	userRepo.On("GetFirstAdmin", mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("role", "admin")).Once()

	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	d := commands.NewCheckoutDelivery(factory, renderer, new(MockMailer), discardLogger())
	err := d.Deliver(ctx, post)
	require.ErrorIs(t, err, commands.ErrAdminRecipientMissing)
	require.Equal(t, jobpost.DeliveryPending, post.Delivery())

	_, statErr := os.Stat(artifact)
	require.True(t, os.IsNotExist(statErr), "report file must be removed on failure too")
}

func TestCheckoutDelivery_Deliver_AdminLookupFailurePropagates(t *testing.T) {
	ctx := t.Context()
	post := checkedOutPost(t)
	artifact := writtenArtifact(t)

	renderer := new(MockRenderer)
	renderer.On("RenderCheckoutReport", mock.Anything, post).Return(artifact, nil).Once()

	lookupErr := errors.New("connection refused")
	userRepo := new(MockUserRepository)
	userRepo.On("GetFirstAdmin", mock.Anything).Return(nil, lookupErr).Once()

	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	d := commands.NewCheckoutDelivery(factory, renderer, new(MockMailer), discardLogger())
	err := d.Deliver(ctx, post)
	require.ErrorIs(t, err, lookupErr)
	require.NotErrorIs(t, err, commands.ErrAdminRecipientMissing)
	require.Equal(t, jobpost.DeliveryPending, post.Delivery())

	_, statErr := os.Stat(artifact)
	require.True(t, os.IsNotExist(statErr))
}

func TestCheckoutDelivery_Deliver_MailFailureKeepsPostPending(t *testing.T) {
	ctx := t.Context()
	post := checkedOutPost(t)
	artifact := writtenArtifact(t)
	admin := adminUser()

	renderer := new(MockRenderer)
	renderer.On("RenderCheckoutReport", mock.Anything, post).Return(artifact, nil).Once()

	userRepo := new(MockUserRepository)
	userRepo.On("GetFirstAdmin", mock.Anything).Return(admin, nil).Once()

	mailer := new(MockMailer)
	mailer.On("SendCheckoutReport", mock.Anything, admin.Email, post.CRID(), "Jane Doe", artifact).
		Return(errors.New("smtp unavailable")).Once()

	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	d := commands.NewCheckoutDelivery(factory, renderer, mailer, discardLogger())
	err := d.Deliver(ctx, post)
	require.Error(t, err)
	require.Equal(t, jobpost.DeliveryPending, post.Delivery())

	_, statErr := os.Stat(artifact)
	require.True(t, os.IsNotExist(statErr))
}
