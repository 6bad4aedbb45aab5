package ports

import (
	"context"

	"github.com/amanj01/catalog-admin/internal/core/domain"
)

// AuthService orchestrates credential verification and token issuance.
type AuthService interface {
	// Login verifies the credential pair and returns a signed token plus the
	// stored role. Unknown usernames and soft-deleted users both yield
	// domain.ErrUserNotFound; a wrong password yields ErrInvalidCredentials.
	Login(ctx context.Context, username, plaintext string) (string, domain.Role, error)

	// EnsureDefaultAdmin guarantees the well-known admin account exists,
	// creating it with a freshly hashed password when absent. When
	// resetPassword is true the stored hash is reset unconditionally.
	// Idempotent across restarts.
	EnsureDefaultAdmin(ctx context.Context, username, plaintext string, resetPassword bool) error
}

// LoginLimiter throttles repeated failed logins per username. Implementations
// are advisory: callers fail open when the limiter itself errors.
type LoginLimiter interface {
	TooMany(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
}
