// Package mailer sends plain-text mail over SMTP.
package mailer

import (
	"context"
	"errors"

	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned by Send when no SMTP host is set.
var ErrNotConfigured = errors.New("smtp is not configured")

// Dialer delivers prepared messages.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends mail from a fixed sender address.
type Mailer struct {
	dialer Dialer
	from   string
}

// Opt configures a Mailer.
type Opt func(*Mailer)

// WithDialer replaces the SMTP dialer.
func WithDialer(d Dialer) Opt {
	return func(m *Mailer) {
		m.dialer = d
	}
}

// New returns a Mailer for host:port. An empty host yields a Mailer whose
// Send always fails with ErrNotConfigured.
func New(host string, port int, user, password, from string, opts ...Opt) *Mailer {
	m := &Mailer{from: from}
	if host != "" {
		m.dialer = gomail.NewDialer(host, port, user, password)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send delivers a single plain-text message.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if m.dialer == nil {
		logger.Log.Warnw("mail skipped, smtp not configured", "to", to, "subject", subject)
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	err := m.dialer.DialAndSend(msg)

	logger.Log.Infow("mail sent",
		"to", to,
		"subject", subject,
		"error", err,
	)

	return err
}
