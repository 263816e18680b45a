// Package mail delivers checkout reports and verification codes over SMTP.
package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer implements ports.Mailer. Every send opens a fresh SMTP
// connection; volume is low enough that connection reuse is not worth the
// bookkeeping.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	cb     *gobreaker.CircuitBreaker
}

// NewSMTPMailer creates a mailer sending from the given address.
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "SMTP-Mailer",
		MaxRequests: 3,
		Interval:    time.Second * 10,
		Timeout:     time.Second * 30,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		cb:     cb,
	}
}

// SendCheckoutReport mails the rendered report to the admin recipient with
// the PDF attached.
func (m *SMTPMailer) SendCheckoutReport(ctx context.Context, recipient, jobCRID, performedBy, artifactPath string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Job Checkout Completed")
	msg.SetBody("text/plain", fmt.Sprintf(
		"The checkout report for job %s, filed by %s, is attached.", jobCRID, performedBy))
	msg.Attach(artifactPath)

	return m.send(ctx, msg)
}

// SendOTP mails the verification code issued during registration.
func (m *SMTPMailer) SendOTP(ctx context.Context, recipient, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Your verification code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your verification code is %s. It expires in 10 minutes.", code))

	return m.send(ctx, msg)
}

func (m *SMTPMailer) send(ctx context.Context, msg *gomail.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := m.cb.Execute(func() (interface{}, error) {
		return nil, m.dialer.DialAndSend(msg)
	})
	return err
}
