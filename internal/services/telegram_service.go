package services

import (
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// TelegramService sends notifications to the staff chat.
type TelegramService struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	log         *zap.Logger
}

// NewTelegramService creates a TelegramService. The bot is built without the
// getMe round trip so startup never depends on Telegram being reachable.
func NewTelegramService(botToken string, adminChatID int64, log *zap.Logger) *TelegramService {
	s := &TelegramService{adminChatID: adminChatID, log: log}
	if botToken == "" {
		return s
	}

	bot := &tgbotapi.BotAPI{
		Token:  botToken,
		Client: &http.Client{Timeout: 15 * time.Second},
		Buffer: 100,
	}
	bot.SetAPIEndpoint(tgbotapi.APIEndpoint)
	s.bot = bot
	return s
}

// Enabled reports whether both the token and the admin chat are set.
func (s *TelegramService) Enabled() bool {
	return s.bot != nil && s.adminChatID != 0
}

// SendToAdmin sends an HTML message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if !s.Enabled() {
		s.log.Debug("telegram skipped: bot token or admin chat not configured")
		return nil
	}

	msg := tgbotapi.NewMessage(s.adminChatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
