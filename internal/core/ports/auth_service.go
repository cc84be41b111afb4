package ports

import (
	"context"

	"github.com/brightlane/site-api/internal/core/domain"
)

// AuthService authenticates administrators and issues bearer tokens.
type AuthService interface {
	// Login accepts a username or an email as the identity value. On success
	// it returns a signed token valid for 8 hours plus the matched account.
	Login(ctx context.Context, identity, password string) (string, *domain.AdminUser, error)
}
