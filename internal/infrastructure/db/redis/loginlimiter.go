package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxAttempts = 10
	attemptTTL  = 15 * time.Minute
)

// LoginLimiter counts failed logins per username in Redis.
// Key format: login:attempts:<username>
//
// The limiter is advisory. Callers treat its errors as "not blocked" so a
// Redis outage never locks everyone out of the API.
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// TooMany reports whether the username has exhausted its failed-attempt
// budget within the current window.
func (l *LoginLimiter) TooMany(ctx context.Context, username string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("login limiter: %w", err)
	}
	return n >= maxAttempts, nil
}

// RecordFailure bumps the failed-attempt counter and refreshes its expiry.
func (l *LoginLimiter) RecordFailure(ctx context.Context, username string) error {
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, l.key(username))
	pipe.Expire(ctx, l.key(username), attemptTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("login limiter: %w", err)
	}
	return nil
}

func (l *LoginLimiter) key(username string) string {
	return fmt.Sprintf("login:attempts:%s", username)
}
