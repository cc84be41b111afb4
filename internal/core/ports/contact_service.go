package ports

import (
	"context"

	"github.com/brightlane/site-api/internal/core/domain"
)

// CreateContactInput is the canonical contact submission after the transport
// layer has collapsed the accepted field aliases (first_name/firstName,
// last_name/lastName) into single values.
type CreateContactInput struct {
	FirstName string
	LastName  string
	// Name is the legacy combined field accepted for older clients.
	Name    string
	Email   string
	Message string
}

type ContactService interface {
	// Submit validates and stores a visitor message, returning the persisted
	// record with its generated identifier.
	Submit(ctx context.Context, input CreateContactInput) (*domain.ContactMessage, error)
	// ListAll returns every message, most recent first.
	ListAll(ctx context.Context) ([]domain.ContactMessage, error)
}
