package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort     string `env:"APP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"false"`
	SiteURL     string `env:"SITE_URL" envDefault:"http://localhost:3000"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	JWTSecret         string        `env:"JWT_SECRET"`
	TokenExpires      time.Duration `env:"JWT_TTL" envDefault:"24h"`
	AdminEmail        string        `env:"ADMIN_EMAIL"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`

	ResendAPIKey  string `env:"RESEND_API_KEY"`
	ResendBaseURL string `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
	MailFrom      string `env:"MAIL_FROM" envDefault:"Website <noreply@example.com>"`
	MailTo        string `env:"MAIL_TO"`

	TelegramBotToken  string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramAdminChat int64  `env:"TELEGRAM_ADMIN_CHAT_ID"`
}

// Load reads an optional .env file and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if strings.TrimSpace(cfg.AppPort) == "" {
		return nil, fmt.Errorf("APP_PORT must be set")
	}
	cfg.SiteURL = strings.TrimRight(strings.TrimSpace(cfg.SiteURL), "/")
	cfg.ResendBaseURL = strings.TrimRight(strings.TrimSpace(cfg.ResendBaseURL), "/")

	return cfg, nil
}

// StoreConfigured reports whether database credentials were provided.
func (c *Config) StoreConfigured() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

// AdminEnabled reports whether admin login can issue tokens.
func (c *Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminEmail != "" && c.AdminPasswordHash != ""
}

// MailRecipients splits MAIL_TO on commas.
func (c *Config) MailRecipients() []string {
	var out []string
	for _, addr := range strings.Split(c.MailTo, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
