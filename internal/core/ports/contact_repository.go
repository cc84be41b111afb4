package ports

import (
	"context"

	"github.com/brightlane/site-api/internal/core/domain"
)

// ContactRepository defines the interface for contact message persistence.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	// FindAll returns all messages ordered by creation time descending.
	FindAll(ctx context.Context) ([]domain.ContactMessage, error)
}
