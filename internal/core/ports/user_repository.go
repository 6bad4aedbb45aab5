package ports

import (
	"context"

	"github.com/amanj01/catalog-admin/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// FindByUsername returns soft-deleted users too; callers that must not see
// them (login, listing) filter on IsDeleted.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]*domain.User, error)
}
