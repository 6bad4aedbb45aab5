package ports

import (
	"context"

	"github.com/amanj01/catalog-admin/internal/core/domain"
)

// UpdateCategoryInput holds a partial update; nil fields are left untouched.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Insert(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, id string, in UpdateCategoryInput) (*domain.Category, error)
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]*domain.Category, error)
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, name, description string) (*domain.Category, error)
	Update(ctx context.Context, id string, in UpdateCategoryInput) (*domain.Category, error)
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
}
