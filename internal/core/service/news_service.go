package service

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/brightlane/site-api/internal/core/domain"
	"github.com/brightlane/site-api/internal/core/ports"
)

// wordsPerMinute is the assumed reading speed for the read-time estimate.
const wordsPerMinute = 200

var wordPattern = regexp.MustCompile(`\w+`)

// unsafeFilenameChars matches everything that may not appear in a stored
// filename; path separators are stripped separately.
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

type NewsService struct {
	repo   ports.NewsRepository
	files  ports.FileStore
	logger zerolog.Logger
}

func NewNewsService(repo ports.NewsRepository, files ports.FileStore, logger zerolog.Logger) *NewsService {
	return &NewsService{repo: repo, files: files, logger: logger}
}

// ListArticles returns every article, most recent first. Articles persisted
// without a read-time get one computed from their content on the way out.
func (s *NewsService) ListArticles(ctx context.Context) ([]domain.NewsArticle, error) {
	articles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if articles[i].ReadTime == 0 {
			articles[i].ReadTime = EstimateReadTime(articles[i].Content)
		}
	}
	return articles, nil
}

// CreateArticle validates the input, writes the attachment to the upload
// store, and persists the article. The file write and the row insert are not
// atomic: a failure between them can leave an orphaned file.
func (s *NewsService) CreateArticle(ctx context.Context, input ports.CreateArticleInput) (*domain.NewsArticle, error) {
	if input.Title == "" {
		return nil, domain.ErrMissingTitle
	}

	var storedName string
	if input.Attachment != nil {
		if input.Attachment.Filename == "" {
			return nil, domain.ErrEmptyFilename
		}
		if !strings.EqualFold(filepath.Ext(input.Attachment.Filename), ".pdf") {
			return nil, domain.ErrFileTypeNotAllowed
		}

		storedName = StoredFilename(input.Attachment.Filename, time.Now().UTC())
		if err := s.files.Save(storedName, input.Attachment.Reader); err != nil {
			s.logger.Error().Err(err).Str("filename", storedName).Msg("failed to save attachment")
			return nil, err
		}
	}

	readTime := input.ReadTime
	if readTime <= 0 {
		readTime = EstimateReadTime(input.Content)
	}

	article := &domain.NewsArticle{
		Title:       input.Title,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		Category:    input.Category,
		PDFFilename: storedName,
		ReadTime:    readTime,
		Slug:        uuid.NewString(),
	}

	if err := s.repo.Create(ctx, article); err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create article")
		return nil, err
	}

	s.logger.Info().Uint("id", article.ID).Str("slug", article.Slug).Bool("has_pdf", storedName != "").Msg("article created")
	return article, nil
}

// DeleteArticle removes the article row. The attachment file is removed
// best-effort first: a missing or undeletable file is logged and ignored so
// the catalog stays consistent even when the store has drifted.
func (s *NewsService) DeleteArticle(ctx context.Context, id uint) error {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if article.HasAttachment() {
		if err := s.files.Remove(article.PDFFilename); err != nil {
			s.logger.Warn().Err(err).Str("filename", article.PDFFilename).Msg("failed to remove attachment, deleting row anyway")
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Uint("id", id).Msg("article deleted")
	return nil
}

// EstimateReadTime computes a reading time in whole minutes from word-like
// tokens in text, assuming 200 words per minute. Never returns less than 1.
func EstimateReadTime(text string) int {
	if text == "" {
		return 1
	}
	words := len(wordPattern.FindAllString(text, -1))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// StoredFilename builds the collision-resistant name an upload is stored
// under: a second-granularity timestamp prefix plus the sanitized original
// name with path separators and unsafe characters stripped.
func StoredFilename(original string, now time.Time) string {
	return fmt.Sprintf("%s_%s", now.Format("20060102150405"), SanitizeFilename(original))
}

// SanitizeFilename reduces a client-supplied filename to a safe flat name:
// any directory prefix is dropped, spaces become underscores, and everything
// outside [A-Za-z0-9_.-] is removed.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}
