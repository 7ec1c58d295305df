package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
)

const (
	limiterWindow      = 15 * time.Minute
	limiterMaxFailures = 5
)

// LoginLimiter throttles repeated failed logins per email using a Redis
// counter with a sliding-start TTL window.
// Key format: login_fail:<email>
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Allow returns domain.ErrTooManyAttempts once the failure budget for the
// current window is exhausted.
func (l *LoginLimiter) Allow(ctx context.Context, email string) error {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("limiter check: %w", err)
	}
	if n >= limiterMaxFailures {
		return domain.ErrTooManyAttempts
	}
	return nil
}

// RecordFailure increments the failure counter; the first failure of a
// window starts the TTL.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, limiterWindow).Err(); err != nil {
			return fmt.Errorf("limiter expire: %w", err)
		}
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login_fail:" + email
}
