package ports

import (
	"context"

	"github.com/amanj01/catalog-admin/internal/core/domain"
)

// FeedbackRepository defines persistence operations for feedback messages.
type FeedbackRepository interface {
	Insert(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	FindByID(ctx context.Context, id string) (*domain.Feedback, error)
	MarkResolved(ctx context.Context, id string) (*domain.Feedback, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Feedback, error)
}

// FeedbackService defines use-case operations for feedback messages.
// Submit is the only operation open to unauthenticated visitors.
type FeedbackService interface {
	Submit(ctx context.Context, name, email, message string) (*domain.Feedback, error)
	List(ctx context.Context) ([]*domain.Feedback, error)
	Get(ctx context.Context, id string) (*domain.Feedback, error)
	Resolve(ctx context.Context, id string) (*domain.Feedback, error)
	Delete(ctx context.Context, id string) error
}
