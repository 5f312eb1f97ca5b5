package notification

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends a single plain-text email.
type Mailer interface {
	Send(to, subject, body string) error
}

// SendGridMailer sends mail through the SendGrid v3 API.
type SendGridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewSendGridMailer creates a mailer authenticated with the given API key.
func NewSendGridMailer(apiKey, fromName, fromAddr string) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromAddr),
	}
}

// Send delivers one plain-text message.
func (m *SendGridMailer) Send(to, subject, body string) error {
	message := mail.NewSingleEmail(m.from, subject, mail.NewEmail("", to), body, "")
	resp, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("email rejected with status %d", resp.StatusCode)
	}
	return nil
}
