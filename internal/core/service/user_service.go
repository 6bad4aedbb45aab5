package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/amanj01/catalog-admin/internal/core/domain"
	"github.com/amanj01/catalog-admin/internal/core/ports"
	"github.com/amanj01/catalog-admin/internal/pkg/password"
)

// UserService implements admin-only account provisioning.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListActive(ctx)
}

// Get returns a user by id. Soft-deleted users surface as not found.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.IsDeleted {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// Create provisions a new account. The plaintext is hashed before it reaches
// the repository; duplicate usernames yield ErrUserExists.
func (s *UserService) Create(ctx context.Context, username, plaintext string, role domain.Role) (*domain.User, error) {
	if username == "" || plaintext == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return nil, err
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("username", username).Str("role", string(role)).Msg("user created")
	return created, nil
}

func (s *UserService) SoftDelete(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *UserService) HardDelete(ctx context.Context, id string) error {
	return s.repo.HardDelete(ctx, id)
}
