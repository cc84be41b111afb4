package postgres

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/brightlane/site-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to establish a Postgres connection
// and optionally bootstrap the first administrator account.
type Config struct {
	DSN     string
	Timeout time.Duration

	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Connect opens a GORM/Postgres connection, verifies connectivity with a
// ping, runs schema auto-migration, and seeds the initial administrator when
// the table is empty. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.AdminUser{},
		&domain.ContactMessage{},
		&domain.NewsArticle{},
	); err != nil {
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}

	if err := seedAdmin(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("postgres seed: %w", err)
	}

	return db, nil
}

// seedAdmin creates the first administrator account when none exists and the
// bootstrap credentials are configured. This is the only provisioning path;
// there is no registration endpoint.
func seedAdmin(ctx context.Context, db *gorm.DB, cfg Config) error {
	if cfg.AdminUsername == "" || cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	repo := NewAuthRepository(db)

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return repo.Create(ctx, &domain.AdminUser{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
	})
}
