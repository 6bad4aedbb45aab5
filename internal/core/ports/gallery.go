package ports

import (
	"context"

	"github.com/amanj01/catalog-admin/internal/core/domain"
)

// UpdateGalleryInput holds a partial update. A nil Images slice leaves the
// stored images untouched; a non-nil slice replaces them.
type UpdateGalleryInput struct {
	ProductID *string
	Images    []string
}

// GalleryRepository defines persistence operations for image galleries.
type GalleryRepository interface {
	Insert(ctx context.Context, g *domain.Gallery) (*domain.Gallery, error)
	FindByID(ctx context.Context, id string) (*domain.Gallery, error)
	Update(ctx context.Context, id string, in UpdateGalleryInput) (*domain.Gallery, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Gallery, error)
}

// GalleryService defines use-case operations for galleries.
type GalleryService interface {
	List(ctx context.Context) ([]*domain.Gallery, error)
	Get(ctx context.Context, id string) (*domain.Gallery, error)
	Create(ctx context.Context, productID string, images []string) (*domain.Gallery, error)
	Update(ctx context.Context, id string, in UpdateGalleryInput) (*domain.Gallery, error)
	Delete(ctx context.Context, id string) error
}
