package email

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Mailer interface {
	Send(toEmail, subject, content string) error
}

// SendGridMailer sends transactional mail through SendGrid. Missing
// SENDGRID_API_KEY yields a disabled mailer that drops everything.
type SendGridMailer struct {
	client *sendgrid.Client
	sender string
}

func NewSendGridFromEnv() *SendGridMailer {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return &SendGridMailer{}
	}
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

func (m *SendGridMailer) Send(toEmail, subject, content string) error {
	if m.client == nil {
		return nil
	}

	from := mail.NewEmail("Food Delivery", m.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, content, content)

	resp, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

var _ Mailer = (*SendGridMailer)(nil)
