package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/model/user"
	"staffing/internal/pkg/errs"
)

func TestVerifyOTPCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewVerifyOTPCommand("jane@example.com", "1234")
	require.NoError(t, err)

	account := &user.User{
		ID:           kernel.NewUUID(),
		Name:         "Jane",
		Email:        "jane@example.com",
		PasswordHash: "x",
		Role:         user.RoleUser,
		CreatedAt:    time.Now(),
	}

	otpStore := new(MockOTPStore)
	otpStore.On("Get", mock.Anything, "jane@example.com").Return("1234", nil).Once()
	otpStore.On("Delete", mock.Anything, "jane@example.com").Return(nil).Once()

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(account, nil).Once(),
		repo.On("Update", mock.Anything, account).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyOTPCommandHandler(factory, otpStore)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, account.Verified)
	otpStore.AssertExpectations(t)
}

func TestVerifyOTPCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewVerifyOTPCommand("jane@example.com", "9999")
	require.NoError(t, err)

	otpStore := new(MockOTPStore)
	otpStore.On("Get", mock.Anything, "jane@example.com").Return("1234", nil).Once()

	h := commands.NewVerifyOTPCommandHandler(new(MockUserUoWFactory), otpStore)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrOTPMismatch)
}

func TestVerifyOTPCommandHandler_Handle_ExpiredCode(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewVerifyOTPCommand("jane@example.com", "1234")
	require.NoError(t, err)

	otpStore := new(MockOTPStore)
	otpStore.On("Get", mock.Anything, "jane@example.com").
		Return("", errs.NewObjectNotFoundError("otp", "jane@example.com")).Once()

	h := commands.NewVerifyOTPCommandHandler(new(MockUserUoWFactory), otpStore)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrOTPMismatch)
}
