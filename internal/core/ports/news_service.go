package ports

import (
	"context"
	"io"

	"github.com/brightlane/site-api/internal/core/domain"
)

// AttachmentInput carries an uploaded file through to the service. Filename is
// the client-supplied original name; the service derives the stored name.
type AttachmentInput struct {
	Filename string
	Reader   io.Reader
}

// CreateArticleInput carries all data needed to publish a news article.
type CreateArticleInput struct {
	Title    string
	Excerpt  string
	Content  string
	Category string
	// ReadTime is the caller-supplied estimate in minutes. Zero means
	// "compute from the content body".
	ReadTime   int
	Attachment *AttachmentInput
}

type NewsService interface {
	// ListArticles returns every article, most recent first.
	ListArticles(ctx context.Context) ([]domain.NewsArticle, error)
	// CreateArticle validates the input, stores the attachment when present,
	// and persists the article with a freshly generated slug.
	CreateArticle(ctx context.Context, input CreateArticleInput) (*domain.NewsArticle, error)
	// DeleteArticle removes the article row and best-effort removes its
	// attachment file. A missing file never blocks the delete.
	DeleteArticle(ctx context.Context, id uint) error
}
