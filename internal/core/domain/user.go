package domain

import (
	"errors"
	"time"
)

// Role is the closed set of actor roles known to the system. Tokens carrying
// any other role value are rejected as malformed rather than passed through.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrForbidden = errors.New("access forbidden")
var ErrTooManyAttempts = errors.New("too many login attempts")
var ErrStoreUnavailable = errors.New("store unavailable")
var ErrUnknownRole = errors.New("unknown role")

// ParseRole maps a raw string onto a known Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleCustomer:
		return RoleCustomer, nil
	default:
		return "", ErrUnknownRole
	}
}

// User models an account that can authenticate against the API.
// Soft-deleted users are retained in the store but must not authenticate.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsDeleted    bool      `json:"is_deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the per-request authenticated principal decoded from a verified
// token. It lives for one request and is never persisted.
type Identity struct {
	UserID string `json:"id"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the identity may perform admin-only operations.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
