package mailer

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/mail.v2"
)

// Transport delivers composed messages
type Transport interface {
	Send(ctx context.Context, m *mail.Message) error
}

// SMTPTransport sends messages through an SMTP server, one connection per message
type SMTPTransport struct {
	dialer *mail.Dialer
}

// NewSMTPTransport creates a transport for the given SMTP server
func NewSMTPTransport(host string, port int, username, password string, timeout time.Duration) *SMTPTransport {
	d := mail.NewDialer(host, port, username, password)
	if timeout > 0 {
		d.Timeout = timeout
	}
	return &SMTPTransport{dialer: d}
}

// Send transmits m synchronously
func (t *SMTPTransport) Send(ctx context.Context, m *mail.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send error: %w", err)
	}
	return nil
}
