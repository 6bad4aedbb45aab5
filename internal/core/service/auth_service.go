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
	"github.com/amanj01/catalog-admin/internal/pkg/token"
)

// AuthService implements login and the default-admin bootstrap. It holds no
// per-request state: every call is a pure computation over request data plus
// one repository lookup.
type AuthService struct {
	users    ports.UserRepository
	tokens   *token.Issuer
	limiter  ports.LoginLimiter
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens *token.Issuer,
	limiter ports.LoginLimiter,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{
		users:    users,
		tokens:   tokens,
		limiter:  limiter,
		tokenTTL: tokenTTL,
		log:      log,
	}
}

// Login verifies the credential pair and issues a token embedding the user's
// id and role. Soft-deleted users surface as ErrUserNotFound, same as absent
// ones; the distinction lives in the logs only.
func (s *AuthService) Login(ctx context.Context, username, plaintext string) (string, domain.Role, error) {
	if username == "" || plaintext == "" {
		return "", "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooMany(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login limiter check failed, allowing attempt")
		} else if blocked {
			return "", "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("username", username).Msg("login for unknown username")
			return "", "", domain.ErrUserNotFound
		}
		return "", "", fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if user.IsDeleted {
		s.log.Debug().Str("username", username).Msg("login for soft-deleted user")
		return "", "", domain.ErrUserNotFound
	}

	ok, err := password.Verify(plaintext, user.PasswordHash)
	if err != nil {
		return "", "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.recordFailure(ctx, username)
		return "", "", domain.ErrInvalidCredentials
	}

	tkn, err := s.tokens.Issue(user.ID, user.Role, s.tokenTTL)
	if err != nil {
		return "", "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("username", username).Str("role", string(user.Role)).Msg("login succeeded")
	return tkn, user.Role, nil
}

// EnsureDefaultAdmin runs once at startup, after the store becomes reachable
// and before request traffic is accepted. When resetPassword is true the
// stored hash is reset to a fresh hash of plaintext unconditionally.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, username, plaintext string, resetPassword bool) error {
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if errors.Is(err, domain.ErrUserNotFound) {
		hash, hashErr := password.Hash(plaintext)
		if hashErr != nil {
			return hashErr
		}
		now := time.Now().UTC()
		_, insertErr := s.users.Insert(ctx, &domain.User{
			Username:     username,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if insertErr != nil && !errors.Is(insertErr, domain.ErrUserExists) {
			return fmt.Errorf("create default admin: %w", insertErr)
		}
		s.log.Info().Str("username", username).Msg("default admin created")
		return nil
	}

	if !resetPassword {
		return nil
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordHash(ctx, existing.ID, hash); err != nil {
		return fmt.Errorf("reset default admin password: %w", err)
	}
	s.log.Info().Str("username", username).Msg("default admin password reset")
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}
