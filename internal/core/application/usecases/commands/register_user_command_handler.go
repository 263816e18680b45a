package commands

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/model/user"
	"staffing/internal/core/ports"
	"staffing/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the signup email is taken.
var ErrEmailAlreadyRegistered = errors.New("user already exists")

// RegisterUserCommandHandler creates unverified accounts and emails the
// one-time verification code.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	otpStore   ports.OTPStore
	mailer     ports.Mailer
	logger     *slog.Logger
}

// NewRegisterUserCommandHandler creates a handler for signup operations.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	otpStore ports.OTPStore,
	mailer ports.Mailer,
	logger *slog.Logger,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		otpStore:   otpStore,
		mailer:     mailer,
		logger:     logger,
	}
}

// Handle processes the signup command. The password is stored as a bcrypt
// hash only. A four-digit code is stored against the email and sent out; the
// account stays unverified until VerifyOTP confirms it.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &user.User{
		ID:           kernel.NewUUID(),
		Name:         cmd.Name(),
		Email:        cmd.Email(),
		PasswordHash: string(hash),
		Role:         cmd.Role(),
		Verified:     false,
		CreatedAt:    time.Now(),
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	_, err = repo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return nil, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err = repo.Add(ctx, account); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	code, err := generateOTP()
	if err != nil {
		return nil, err
	}

	if err = h.otpStore.Save(ctx, account.Email, code); err != nil {
		return nil, err
	}

	if err = h.mailer.SendOTP(ctx, account.Email, code); err != nil {
		h.logger.WarnContext(ctx, "failed to send verification code",
			slog.String("email", account.Email),
			slog.Any("error", err))
		return nil, err
	}

	return account, nil
}

// generateOTP returns a random four-digit code in [1000, 9999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+1000), nil
}
