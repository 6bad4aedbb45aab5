package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/amanj01/catalog-admin/internal/core/domain"
	"github.com/amanj01/catalog-admin/internal/core/ports"
)

// FeedbackService implements the public feedback form and its admin review
// operations.
type FeedbackService struct {
	repo ports.FeedbackRepository
	log  zerolog.Logger
}

func NewFeedbackService(repo ports.FeedbackRepository, log zerolog.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, log: log}
}

func (s *FeedbackService) Submit(ctx context.Context, name, email, message string) (*domain.Feedback, error) {
	created, err := s.repo.Insert(ctx, &domain.Feedback{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("feedback_id", created.ID).Msg("feedback submitted")
	return created, nil
}

func (s *FeedbackService) List(ctx context.Context) ([]*domain.Feedback, error) {
	return s.repo.List(ctx)
}

func (s *FeedbackService) Get(ctx context.Context, id string) (*domain.Feedback, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *FeedbackService) Resolve(ctx context.Context, id string) (*domain.Feedback, error) {
	return s.repo.MarkResolved(ctx, id)
}

func (s *FeedbackService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
