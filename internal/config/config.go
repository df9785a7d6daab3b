package config

import (
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

// Config is read from the environment, after any .env file in the working
// directory has been loaded.
type Config struct {
	Host    string `env:"HOST"`
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DatabasePath     string        `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	HashSalt         string        `env:"HASH_SALT"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`

	SMTP SMTPConfig

	ContactRateEvery time.Duration `env:"CONTACT_RATE_EVERY" envDefault:"10m"`
	ContactRateBurst int           `env:"CONTACT_RATE_BURST" envDefault:"3"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	OtelEnabled bool   `env:"OTEL_ENABLED" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"showcase"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port     string `env:"SMTP_PORT" envDefault:"587"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	To       string `env:"TO_EMAIL" envDefault:"zachkordaspotter@gmail.com"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}
	if cfg.ContactRateBurst < 1 {
		return nil, fmt.Errorf("CONTACT_RATE_BURST must be at least 1, got %d", cfg.ContactRateBurst)
	}
	if cfg.ContactRateEvery <= 0 {
		return nil, fmt.Errorf("CONTACT_RATE_EVERY must be positive, got %s", cfg.ContactRateEvery)
	}
	return &cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// UsesDefaultAdminCredentials reports whether the admin login still has the
// development defaults.
func (c *Config) UsesDefaultAdminCredentials() bool {
	return c.AdminUsername == "admin" && c.AdminPassword == "admin123"
}

// SlogLevel maps LOG_LEVEL to a slog.Level.
// Recognized values: debug, info (default), warn|warning, error.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
