package ports

import (
	"context"

	"github.com/brightlane/site-api/internal/core/domain"
)

// NewsRepository defines the interface for news article persistence.
type NewsRepository interface {
	Create(ctx context.Context, article *domain.NewsArticle) error
	// FindAll returns all articles ordered by creation time descending.
	FindAll(ctx context.Context) ([]domain.NewsArticle, error)
	FindByID(ctx context.Context, id uint) (*domain.NewsArticle, error)
	Delete(ctx context.Context, id uint) error
}
