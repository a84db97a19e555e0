package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridClient sends through the SendGrid v3 mail API.
type SendGridClient struct {
	client      *sendgrid.Client
	senderEmail string
	senderName  string
}

func NewSendGridClient(apiKey, senderEmail, senderName string) *SendGridClient {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(senderEmail) == "" {
		return nil
	}
	if strings.TrimSpace(senderName) == "" {
		senderName = senderEmail
	}
	return &SendGridClient{
		client:      sendgrid.NewSendClient(apiKey),
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (c *SendGridClient) SendHTML(ctx context.Context, toEmail, toName, subject, htmlBody string) (string, error) {
	if c == nil {
		return "", errors.New("sendgrid client is nil")
	}
	if err := checkEnvelope(toEmail, subject, htmlBody); err != nil {
		return "", err
	}

	message := buildSendGridMessage(c.senderName, c.senderEmail, toName, toEmail, subject, htmlBody)
	resp, err := c.client.SendWithContext(ctx, message)
	if err != nil {
		return "", fmt.Errorf("sendgrid request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("sendgrid send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(resp.Body))
	}
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		return ids[0], nil
	}
	return "", nil
}

func buildSendGridMessage(fromName, fromEmail, toName, toEmail, subject, htmlBody string) *mail.SGMailV3 {
	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmail)
	return mail.NewSingleEmail(from, subject, to, plainText(htmlBody), htmlBody)
}
