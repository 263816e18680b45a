package ports

import "context"

// OTPStore keeps one-time verification codes keyed by email with a TTL.
type OTPStore interface {
	// Save stores the code for the email, replacing any previous one.
	Save(ctx context.Context, email string, code string) error

	// Get returns the stored code for the email.
	// Returns errs.ErrObjectNotFound when no code is stored or it expired.
	Get(ctx context.Context, email string) (string, error)

	// Delete removes the stored code for the email.
	Delete(ctx context.Context, email string) error
}
