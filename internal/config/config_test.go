package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SITE_URL", "https://pharma.example.uz/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpires)
	assert.Equal(t, "https://pharma.example.uz", cfg.SiteURL)
	assert.False(t, cfg.StoreConfigured())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/site")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("TELEGRAM_ADMIN_CHAT_ID", "-100123")
	t.Setenv("MAIL_TO", "sales@example.uz, , qa@example.uz")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.True(t, cfg.StoreConfigured())
	assert.Equal(t, 2*time.Hour, cfg.TokenExpires)
	assert.Equal(t, int64(-100123), cfg.TelegramAdminChat)
	assert.Equal(t, []string{"sales@example.uz", "qa@example.uz"}, cfg.MailRecipients())
}

func TestLoadRejectsBadChatID(t *testing.T) {
	t.Setenv("TELEGRAM_ADMIN_CHAT_ID", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}

func TestAdminEnabled(t *testing.T) {
	cfg := &Config{JWTSecret: "s", AdminEmail: "a@b.c"}
	assert.False(t, cfg.AdminEnabled())
	cfg.AdminPasswordHash = "$2a$10$x"
	assert.True(t, cfg.AdminEnabled())
}
