package ports

import (
	"context"

	"github.com/amanj01/catalog-admin/internal/core/domain"
)

// CreateProductInput carries all data needed to create a product. Thumbnail
// fields hold stored image paths produced by the upload store.
type CreateProductInput struct {
	Title            string
	ShortDescription string
	Description      string
	Price            float64
	CategoryID       string
	FrontThumbnail   string
	BackThumbnail    string
}

// UpdateProductInput holds a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	Title            *string
	ShortDescription *string
	Description      *string
	Price            *float64
	CategoryID       *string
	FrontThumbnail   *string
	BackThumbnail    *string
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	SoftDelete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]*domain.Product, error)
}

// ProductService defines use-case operations for products.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	SoftDelete(ctx context.Context, id string) error
}
