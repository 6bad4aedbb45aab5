package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/amanj01/catalog-admin/internal/core/domain"
	"github.com/amanj01/catalog-admin/internal/core/ports"
)

// ProductService implements catalog product use-cases. Reads are public;
// mutations are reached only through the admin-gated routes.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.ListActive(ctx)
}

// Get returns a product by id; soft-deleted products surface as not found.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsDeleted {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	created, err := s.repo.Insert(ctx, &domain.Product{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		Price:            in.Price,
		CategoryID:       in.CategoryID,
		Thumbnails: domain.Thumbnails{
			Front: in.FrontThumbnail,
			Back:  in.BackThumbnail,
		},
	})
	if err != nil {
		s.log.Error().Err(err).Str("title", in.Title).Msg("failed to create product")
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("title", created.Title).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *ProductService) SoftDelete(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}
