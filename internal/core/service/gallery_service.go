package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/amanj01/catalog-admin/internal/core/domain"
	"github.com/amanj01/catalog-admin/internal/core/ports"
)

// ErrNoImages is returned when a gallery is created without any images.
var ErrNoImages = errors.New("gallery requires at least one image")

// GalleryService implements image gallery use-cases.
type GalleryService struct {
	repo ports.GalleryRepository
	log  zerolog.Logger
}

func NewGalleryService(repo ports.GalleryRepository, log zerolog.Logger) *GalleryService {
	return &GalleryService{repo: repo, log: log}
}

func (s *GalleryService) List(ctx context.Context) ([]*domain.Gallery, error) {
	return s.repo.List(ctx)
}

func (s *GalleryService) Get(ctx context.Context, id string) (*domain.Gallery, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GalleryService) Create(ctx context.Context, productID string, images []string) (*domain.Gallery, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	created, err := s.repo.Insert(ctx, &domain.Gallery{ProductID: productID, Images: images})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("gallery_id", created.ID).Int("images", len(images)).Msg("gallery created")
	return created, nil
}

func (s *GalleryService) Update(ctx context.Context, id string, in ports.UpdateGalleryInput) (*domain.Gallery, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *GalleryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
