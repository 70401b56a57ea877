package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"strings"

	"go.uber.org/zap"

	"github.com/example/pharmasite/internal/models"
)

var submissionEmail = template.Must(template.New("submission").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <h2>{{.Heading}}</h2>
  <table cellpadding="6" style="border-collapse: collapse;">
    {{range .Fields}}<tr><td><strong>{{.Label}}</strong></td><td>{{.Value}}</td></tr>
    {{end}}
  </table>
  {{if .Message}}<h3>Message</h3>
  <p style="white-space: pre-wrap;">{{.Message}}</p>{{end}}
  <hr>
  <p style="font-size: 12px; color: #6b7280;">IP: {{.IP}} · User agent: {{.UserAgent}}</p>
</body>
</html>`))

type emailField struct {
	Label string
	Value string
}

type submissionView struct {
	Heading   string
	Fields    []emailField
	Message   string
	IP        string
	UserAgent string
}

// NotificationService fans submission notices out to email and Telegram.
type NotificationService struct {
	mailer     *Mailer
	telegram   *TelegramService
	from       string
	recipients []string
	log        *zap.Logger
}

// NewNotificationService wires both channels. Either may be disabled.
func NewNotificationService(mailer *Mailer, telegram *TelegramService, from string, recipients []string, log *zap.Logger) *NotificationService {
	return &NotificationService{
		mailer:     mailer,
		telegram:   telegram,
		from:       from,
		recipients: recipients,
		log:        log,
	}
}

// NotifySubmission reports a stored contact message or regulatory inquiry.
// Errors from the individual channels are joined.
func (s *NotificationService) NotifySubmission(ctx context.Context, msg models.ContactMessage) error {
	view := buildSubmissionView(msg)

	var errs []error

	if s.mailer != nil && s.mailer.Enabled() && len(s.recipients) > 0 {
		body, err := renderSubmissionEmail(view)
		if err != nil {
			errs = append(errs, err)
		} else if err := s.mailer.Send(ctx, Email{
			From:    s.from,
			To:      s.recipients,
			Subject: submissionSubject(msg),
			HTML:    body,
			ReplyTo: msg.Email,
		}); err != nil {
			errs = append(errs, err)
		}
	}

	if s.telegram != nil {
		if err := s.telegram.SendToAdmin(formatTelegramSubmission(view)); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func submissionSubject(msg models.ContactMessage) string {
	if msg.Source == models.SourceRegulatoryInquiry {
		return fmt.Sprintf("Regulatory inquiry from %s (%s)", msg.Name, msg.Company)
	}
	return fmt.Sprintf("New contact message from %s", msg.Name)
}

func buildSubmissionView(msg models.ContactMessage) submissionView {
	view := submissionView{
		Heading:   "New contact message",
		Message:   msg.Message,
		IP:        msg.IPAddress,
		UserAgent: msg.UserAgent,
		Fields: []emailField{
			{Label: "Name", Value: msg.Name},
			{Label: "Email", Value: msg.Email},
		},
	}
	if msg.Source == models.SourceRegulatoryInquiry {
		view.Heading = "New regulatory inquiry"
		view.Fields = append(view.Fields,
			emailField{Label: "Company", Value: msg.Company},
			emailField{Label: "Country", Value: msg.Country},
			emailField{Label: "Product type", Value: msg.ProductType},
		)
	}
	return view
}

func renderSubmissionEmail(view submissionView) (string, error) {
	var buf bytes.Buffer
	if err := submissionEmail.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render submission email: %w", err)
	}
	return buf.String(), nil
}

// formatTelegramSubmission builds the chat summary. Telegram HTML mode only
// needs <, > and & escaped.
func formatTelegramSubmission(view submissionView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>📩 %s</b>\n", html.EscapeString(view.Heading))
	for _, f := range view.Fields {
		fmt.Fprintf(&b, "<b>%s:</b> %s\n", f.Label, html.EscapeString(f.Value))
	}
	if view.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", html.EscapeString(view.Message))
	}
	b.WriteString("━━━━━━━━━━━━━━━━━━")
	return b.String()
}
