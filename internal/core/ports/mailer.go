package ports

import "context"

// Mailer sends outbound email on behalf of the service.
type Mailer interface {
	// SendCheckoutReport emails the checkout report at artifactPath to the
	// given recipient as an attachment.
	SendCheckoutReport(ctx context.Context, recipient string, jobCRID string, performedBy string, artifactPath string) error

	// SendOTP emails a one-time verification code to the recipient.
	SendOTP(ctx context.Context, recipient string, code string) error
}
