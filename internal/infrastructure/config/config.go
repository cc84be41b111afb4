package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SecretKey is the general application secret; JWTSecret signs bearer
	// tokens and may rotate independently (old sessions just expire).
	SecretKey string `env:"SECRET_KEY, default=fallback-secret"`
	JWTSecret string `env:"JWT_SECRET"`

	DatabaseURL string `env:"DATABASE_URL"`

	// UploadDir is the flat directory attachments are written to and served
	// from. MaxBodySize is passed straight to Echo's BodyLimit middleware
	// (plain numbers are bytes, "10M" style suffixes are accepted).
	UploadDir   string `env:"UPLOAD_DIR,    default=uploads"`
	MaxBodySize string `env:"MAX_BODY_SIZE, default=10M"`

	Admin AdminConfig
}

// AdminConfig drives the boot-time administrator bootstrap. All three values
// must be set for an account to be created; accounts are never created over
// HTTP.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("config: DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs with production settings
// (JSON logs, no pretty console output).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
