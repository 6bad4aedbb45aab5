package ports

import (
	"context"

	"github.com/amanj01/catalog-admin/internal/core/domain"
)

// UserService defines admin-only account provisioning operations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, username, plaintext string, role domain.Role) (*domain.User, error)
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
}
