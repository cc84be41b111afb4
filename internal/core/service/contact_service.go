package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/brightlane/site-api/internal/core/domain"
	"github.com/brightlane/site-api/internal/core/ports"
)

type ContactService struct {
	repo   ports.ContactRepository
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

// Submit stores a visitor message. Any caller may submit; there is no
// deduplication, rate limiting, or spam filtering.
func (s *ContactService) Submit(ctx context.Context, input ports.CreateContactInput) (*domain.ContactMessage, error) {
	if input.Email == "" || input.Message == "" {
		return nil, domain.ErrMissingContactFields
	}

	msg := &domain.ContactMessage{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		s.logger.Error().Err(err).Msg("failed to store contact message")
		return nil, err
	}

	s.logger.Info().Uint("id", msg.ID).Msg("contact message saved")
	return msg, nil
}

// ListAll returns every stored message, most recent first.
func (s *ContactService) ListAll(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.repo.FindAll(ctx)
}
