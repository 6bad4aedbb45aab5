package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/amanj01/catalog-admin/internal/core/domain"
	"github.com/amanj01/catalog-admin/internal/core/ports"
)

// CategoryService implements category use-cases.
type CategoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.ListActive(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.IsDeleted {
		return nil, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	created, err := s.repo.Insert(ctx, &domain.Category{Name: name, Description: description})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("category_id", created.ID).Str("name", name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, in ports.UpdateCategoryInput) (*domain.Category, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *CategoryService) SoftDelete(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *CategoryService) HardDelete(ctx context.Context, id string) error {
	return s.repo.HardDelete(ctx, id)
}
