package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/pharmasite/internal/models"
)

func regulatoryMessage() models.ContactMessage {
	return models.ContactMessage{
		Source:      models.SourceRegulatoryInquiry,
		Name:        "Aziz <script>",
		Email:       "aziz@example.uz",
		Company:     "MedTrade",
		Country:     "Uzbekistan",
		ProductType: "Generics",
		Message:     "Registration timeline?",
		IPAddress:   "10.0.0.1",
		UserAgent:   "curl/8",
	}
}

func TestRenderSubmissionEmailEscapes(t *testing.T) {
	body, err := renderSubmissionEmail(buildSubmissionView(regulatoryMessage()))
	require.NoError(t, err)
	assert.Contains(t, body, "New regulatory inquiry")
	assert.Contains(t, body, "Aziz &lt;script&gt;")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "MedTrade")
}

func TestFormatTelegramSubmission(t *testing.T) {
	text := formatTelegramSubmission(buildSubmissionView(models.ContactMessage{
		Source:  models.SourceContact,
		Name:    "A & B",
		Email:   "ab@example.uz",
		Message: "x < y",
	}))
	assert.Contains(t, text, "<b>📩 New contact message</b>")
	assert.Contains(t, text, "A &amp; B")
	assert.Contains(t, text, "x &lt; y")
	assert.NotContains(t, text, "Company")
}

func TestSubmissionSubject(t *testing.T) {
	assert.Equal(t, "Regulatory inquiry from Aziz <script> (MedTrade)", submissionSubject(regulatoryMessage()))
	assert.Equal(t, "New contact message from Bob", submissionSubject(models.ContactMessage{Name: "Bob"}))
}

func TestNotifySubmissionSendsEmail(t *testing.T) {
	var got resend.SendEmailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"4ef9a417"}`))
	}))
	defer srv.Close()

	log := zap.NewNop()
	svc := NewNotificationService(
		NewMailer("re_test", srv.URL, log),
		NewTelegramService("", 0, log),
		"Site <noreply@example.uz>",
		[]string{"regulatory@example.uz"},
		log,
	)

	require.NoError(t, svc.NotifySubmission(context.Background(), regulatoryMessage()))
	assert.Equal(t, "aziz@example.uz", got.ReplyTo)
	assert.Equal(t, []string{"regulatory@example.uz"}, got.To)
	assert.Contains(t, got.Html, "Uzbekistan")
}

func TestNotifySubmissionReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	log := zap.NewNop()
	svc := NewNotificationService(NewMailer("re_test", srv.URL, log), nil, "from@example.uz", []string{"to@example.uz"}, log)
	assert.Error(t, svc.NotifySubmission(context.Background(), regulatoryMessage()))
}

func TestNotifySubmissionAllChannelsDisabled(t *testing.T) {
	log := zap.NewNop()
	svc := NewNotificationService(NewMailer("", "", log), NewTelegramService("", 0, log), "", nil, log)
	assert.NoError(t, svc.NotifySubmission(context.Background(), regulatoryMessage()))
}

func TestNotifySubmissionSendsTelegram(t *testing.T) {
	var got telegramCall
	srv := newTelegramAPI(t, `{"ok":true,"result":{"message_id":1,"date":1717400000,"chat":{"id":42,"type":"private"}}}`, &got)

	log := zap.NewNop()
	telegram := NewTelegramService("123:abc", 42, log)
	telegram.bot.SetAPIEndpoint(srv.URL + "/bot%s/%s")
	svc := NewNotificationService(NewMailer("", "", log), telegram, "", nil, log)

	require.NoError(t, svc.NotifySubmission(context.Background(), regulatoryMessage()))
	assert.Equal(t, "42", got.form.Get("chat_id"))
	assert.Contains(t, got.form.Get("text"), "Aziz &lt;script&gt;")
	assert.Contains(t, got.form.Get("text"), "MedTrade")
}
