package infrastructure

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// Mailer sends the account-lifecycle emails. Delivery confirmation is not
// tracked; an error means the send request itself failed.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, email, token string) error
	SendPasswordResetEmail(ctx context.Context, email, token string) error
}

type MailService struct {
	client  *resend.Client
	sender  string
	baseURL string
}

func NewMailService(apiKey, sender, baseURL string) *MailService {
	return &MailService{
		client:  resend.NewClient(apiKey),
		sender:  sender,
		baseURL: baseURL,
	}
}

func (m *MailService) SendVerificationEmail(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/api/auth/verify-email?token=%s", m.baseURL, token)
	return m.send(ctx, email, "Verify your email",
		fmt.Sprintf(`Click <a href="%s">here</a> to verify your email.`, link))
}

func (m *MailService) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.baseURL, token)
	return m.send(ctx, email, "Reset your password",
		fmt.Sprintf(`Click <a href="%s">here</a> to reset your password.`, link))
}

func (m *MailService) send(ctx context.Context, to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    m.sender,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Printf("mail send to %s failed: %v", to, err)
		return err
	}
	log.Printf("mail sent to %s (id %s)", to, sent.Id)
	return nil
}
