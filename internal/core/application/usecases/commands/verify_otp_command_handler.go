package commands

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"staffing/internal/core/ports"
	"staffing/internal/pkg/errs"
)

// ErrOTPMismatch is returned when the submitted code is wrong or expired.
var ErrOTPMismatch = errors.New("invalid or expired OTP")

// VerifyOTPCommandHandler confirms signup codes and marks accounts verified.
type VerifyOTPCommandHandler struct {
	uowFactory UserUoWFactory
	otpStore   ports.OTPStore
}

// NewVerifyOTPCommandHandler creates a handler for code confirmation.
func NewVerifyOTPCommandHandler(uowFactory UserUoWFactory, otpStore ports.OTPStore) VerifyOTPCommandHandler {
	return VerifyOTPCommandHandler{
		uowFactory: uowFactory,
		otpStore:   otpStore,
	}
}

// Handle processes the verification command. The stored code is consumed on
// success so a code cannot be replayed.
func (h *VerifyOTPCommandHandler) Handle(ctx context.Context, cmd VerifyOTPCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	stored, err := h.otpStore.Get(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrOTPMismatch
		}
		return err
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(cmd.Code())) != 1 {
		return ErrOTPMismatch
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	account, err := repo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}

	account.Verified = true
	if err = repo.Update(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.otpStore.Delete(ctx, cmd.Email()); err != nil {
		return fmt.Errorf("consume otp: %w", err)
	}

	return nil
}
