package ports

import (
	"context"

	"github.com/brightlane/site-api/internal/core/domain"
)

// AuthRepository defines the interface for administrator persistence.
type AuthRepository interface {
	// FindByUsernameOrEmail matches the identity value against both the
	// username and email columns.
	FindByUsernameOrEmail(ctx context.Context, identity string) (*domain.AdminUser, error)
	Create(ctx context.Context, user *domain.AdminUser) error
	Count(ctx context.Context) (int64, error)
}
