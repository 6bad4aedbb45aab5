package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/amanj01/catalog-admin/internal/core/domain"
	"github.com/amanj01/catalog-admin/internal/core/ports"
	"github.com/amanj01/catalog-admin/internal/pkg/password"
	"github.com/amanj01/catalog-admin/internal/pkg/token"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users   map[string]*domain.User // keyed by username
	nextID  int
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = string(rune('a' + r.nextID))
	r.users[stored.Username] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) UpdatePasswordHash(_ context.Context, id, hash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = hash
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.IsDeleted = true
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) HardDelete(_ context.Context, id string) error {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) ListActive(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if !u.IsDeleted {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

type stubLimiter struct {
	blocked  bool
	checkErr error
	failures []string
}

func (l *stubLimiter) TooMany(_ context.Context, _ string) (bool, error) {
	return l.blocked, l.checkErr
}

func (l *stubLimiter) RecordFailure(_ context.Context, username string) error {
	l.failures = append(l.failures, username)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func seedUser(t *testing.T, repo *stubUserRepo, username, plaintext string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := password.Hash(plaintext)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u, err := repo.Insert(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func newAuthSvc(repo *stubUserRepo, limiter ports.LoginLimiter) *AuthService {
	return NewAuthService(repo, token.NewIssuer("secret"), limiter, time.Hour, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "carol", "s3cret", domain.RoleAdmin)
	svc := newAuthSvc(repo, nil)

	tkn, role, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if role != domain.RoleAdmin {
		t.Errorf("expected role admin, got %s", role)
	}

	claims, err := token.NewIssuer("secret").Verify(tkn)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("token role: want admin, got %s", claims.Role)
	}
}

func TestAuthService_Login_TokenRoleMatchesStoredRole(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "cust", "pw123", domain.RoleCustomer)
	svc := newAuthSvc(repo, nil)

	tkn, role, err := svc.Login(context.Background(), "cust", "pw123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if role != domain.RoleCustomer {
		t.Errorf("expected customer role, got %s", role)
	}
	claims, err := token.NewIssuer("secret").Verify(tkn)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Role != domain.RoleCustomer {
		t.Errorf("decoded role: want customer, got %s", claims.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "dave", "goodpass", domain.RoleCustomer)
	limiter := &stubLimiter{}
	svc := newAuthSvc(repo, limiter)

	_, _, err := svc.Login(context.Background(), "dave", "badpass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(limiter.failures) != 1 {
		t.Errorf("expected failed attempt to be recorded, got %v", limiter.failures)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), nil)

	_, _, err := svc.Login(context.Background(), "ghost", "pass")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_SoftDeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "erin", "pw", domain.RoleCustomer)
	if err := repo.SoftDelete(context.Background(), u.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	svc := newAuthSvc(repo, nil)

	// Correct password, but soft-deleted users must not authenticate, and the
	// caller must not be able to tell them apart from absent ones.
	_, _, err := svc.Login(context.Background(), "erin", "pw")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for soft-deleted user, got %v", err)
	}
}

func TestAuthService_Login_PasswordChangeUsesNewHash(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "frank", "oldpass", domain.RoleCustomer)
	svc := newAuthSvc(repo, nil)

	newHash, err := password.Hash("newpass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := repo.UpdatePasswordHash(context.Background(), u.ID, newHash); err != nil {
		t.Fatalf("update hash: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "frank", "oldpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password must no longer verify, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "frank", "newpass"); err != nil {
		t.Fatalf("new password must verify, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), nil)

	if _, _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty username, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "user", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Login_StoreUnavailable(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("connection refused")
	svc := newAuthSvc(repo, nil)

	_, _, err := svc.Login(context.Background(), "carol", "pw")
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "gina", "pw", domain.RoleCustomer)
	svc := newAuthSvc(repo, &stubLimiter{blocked: true})

	_, _, err := svc.Login(context.Background(), "gina", "pw")
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_LimiterErrorFailsOpen(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "hank", "pw", domain.RoleCustomer)
	svc := newAuthSvc(repo, &stubLimiter{checkErr: errors.New("redis timeout")})

	if _, _, err := svc.Login(context.Background(), "hank", "pw"); err != nil {
		t.Fatalf("limiter failure must not block login, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Bootstrap
// ---------------------------------------------------------------------------

func TestAuthService_EnsureDefaultAdmin_CreatesWhenAbsent(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, nil)

	if err := svc.EnsureDefaultAdmin(context.Background(), "admin", "admin123", false); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	u, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if u.Role != domain.RoleAdmin {
		t.Errorf("expected admin role, got %s", u.Role)
	}
	ok, err := password.Verify("admin123", u.PasswordHash)
	if err != nil || !ok {
		t.Errorf("default password must verify (ok=%v err=%v)", ok, err)
	}
}

func TestAuthService_EnsureDefaultAdmin_IdempotentAcrossRestarts(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, nil)

	// Two consecutive boots with the reset flag on.
	if err := svc.EnsureDefaultAdmin(context.Background(), "admin", "admin123", true); err != nil {
		t.Fatalf("first bootstrap failed: %v", err)
	}
	if err := svc.EnsureDefaultAdmin(context.Background(), "admin", "admin123", true); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}

	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one admin, got %d users", len(repo.users))
	}
	u, _ := repo.FindByUsername(context.Background(), "admin")
	ok, err := password.Verify("admin123", u.PasswordHash)
	if err != nil || !ok {
		t.Errorf("password must equal the default after restarts (ok=%v err=%v)", ok, err)
	}
}

func TestAuthService_EnsureDefaultAdmin_NoResetKeepsExistingPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, nil)

	if err := svc.EnsureDefaultAdmin(context.Background(), "admin", "admin123", false); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	// Operator changes the admin password.
	u, _ := repo.FindByUsername(context.Background(), "admin")
	changed, _ := password.Hash("operator-set")
	if err := repo.UpdatePasswordHash(context.Background(), u.ID, changed); err != nil {
		t.Fatalf("update hash: %v", err)
	}

	// Restart without reset: the changed password survives.
	if err := svc.EnsureDefaultAdmin(context.Background(), "admin", "admin123", false); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	u, _ = repo.FindByUsername(context.Background(), "admin")
	if ok, _ := password.Verify("operator-set", u.PasswordHash); !ok {
		t.Error("bootstrap without reset must not overwrite the stored hash")
	}
}

func TestAuthService_EnsureDefaultAdmin_ResetOverwritesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, nil)

	if err := svc.EnsureDefaultAdmin(context.Background(), "admin", "admin123", false); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	u, _ := repo.FindByUsername(context.Background(), "admin")
	changed, _ := password.Hash("operator-set")
	_ = repo.UpdatePasswordHash(context.Background(), u.ID, changed)

	if err := svc.EnsureDefaultAdmin(context.Background(), "admin", "admin123", true); err != nil {
		t.Fatalf("reset bootstrap failed: %v", err)
	}
	u, _ = repo.FindByUsername(context.Background(), "admin")
	if ok, _ := password.Verify("admin123", u.PasswordHash); !ok {
		t.Error("reset bootstrap must restore the default password")
	}
}
