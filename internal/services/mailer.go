package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

const defaultResendBaseURL = "https://api.resend.com"

// Email is a single transactional message.
type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

// Mailer sends email through Resend.
type Mailer struct {
	client *resend.Client
	log    *zap.Logger
}

// NewMailer creates a Mailer. An empty apiKey turns Send into a no-op.
func NewMailer(apiKey, baseURL string, log *zap.Logger) *Mailer {
	m := &Mailer{log: log}
	if apiKey == "" {
		return m
	}

	client := resend.NewCustomClient(&http.Client{Timeout: 15 * time.Second}, apiKey)
	if baseURL == "" {
		baseURL = defaultResendBaseURL
	}
	// Request paths are resolved relative to the base, so it needs the slash.
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		log.Warn("invalid RESEND_BASE_URL, using default", zap.String("base_url", baseURL), zap.Error(err))
		u, _ = url.Parse(defaultResendBaseURL + "/")
	}
	client.BaseURL = u

	m.client = client
	return m
}

// Enabled reports whether an API key is configured.
func (m *Mailer) Enabled() bool {
	return m.client != nil
}

// Send delivers the email. API errors are returned as is.
func (m *Mailer) Send(ctx context.Context, email Email) error {
	if !m.Enabled() {
		m.log.Debug("email skipped: RESEND_API_KEY not configured", zap.String("subject", email.Subject))
		return nil
	}
	if len(email.To) == 0 {
		return fmt.Errorf("send email: no recipients")
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		ReplyTo: email.ReplyTo,
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	m.log.Debug("email sent", zap.String("id", sent.Id), zap.String("subject", email.Subject))
	return nil
}
