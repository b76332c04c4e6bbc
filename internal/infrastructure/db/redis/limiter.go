package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cumplia/compliance-api/internal/core/domain"
)

// LoginLimiter throttles login attempts per email and per client IP so that
// credential hammering is stopped before it reaches the bcrypt verifier.
// Counters live in Redis with a sliding window approximated by key expiry.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// Enforce counts one attempt against both keys and returns
// domain.ErrTooManyAttempts once either exceeds the limit. A Redis failure is
// reported as an error distinct from the limit being hit; the caller decides
// whether to fail open.
func (l *LoginLimiter) Enforce(ctx context.Context, email, ip string) error {
	if err := l.enforceKey(ctx, "login:email:"+email); err != nil {
		return err
	}
	if ip != "" {
		return l.enforceKey(ctx, "login:ip:"+ip)
	}
	return nil
}

func (l *LoginLimiter) enforceKey(ctx context.Context, key string) error {
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login limiter: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("login limiter: %w", err)
		}
	}
	if count > int64(l.maxAttempts) {
		return domain.ErrTooManyAttempts
	}
	return nil
}
