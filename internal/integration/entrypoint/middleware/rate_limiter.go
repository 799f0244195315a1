// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// limiterStore counts attempts per key inside a fixed window.
type limiterStore interface {
	allow(ctx context.Context, key string) (bool, error)
	reset(ctx context.Context) error
}

// RateLimiter provides IP-based rate limiting for the login endpoint. The
// backing store is an in-process map, or Redis when configured, so several
// instances can share the same counters.
type RateLimiter struct {
	store limiterStore
}

// NewRateLimiter creates an in-memory rate limiter with default settings.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates an in-memory rate limiter with custom settings.
func NewRateLimiterWithConfig(maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		store: &memoryStore{
			entries:        make(map[string]*rateLimitEntry),
			maxAttempts:    maxAttempts,
			windowDuration: windowDuration,
		},
	}
}

// NewRedisRateLimiter creates a Redis-backed rate limiter.
func NewRedisRateLimiter(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		store: &redisStore{
			client:         client,
			maxAttempts:    maxAttempts,
			windowDuration: windowDuration,
		},
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// A store failure lets the request through: login availability wins over
// strict throttling.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.store.allow(c.Request.Context(), clientIP)
		if err == nil && !allowed {
			c.JSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				"demasiados intentos, intente mas tarde",
				string(domainerror.ErrCodeRateLimited),
			))
			c.Abort()
			return
		}

		c.Next()
	}
}

// Reset clears the rate limiter state (useful for testing).
func (rl *RateLimiter) Reset() {
	_ = rl.store.reset(context.Background())
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// memoryStore is the in-process limiter backend.
type memoryStore struct {
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	maxAttempts    int
	windowDuration time.Duration
}

func (s *memoryStore) allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		s.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(s.windowDuration),
		}
		return true, nil
	}

	if entry.attempts < s.maxAttempts {
		entry.attempts++
		return true, nil
	}
	return false, nil
}

func (s *memoryStore) reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*rateLimitEntry)
	return nil
}

// redisStore is the shared limiter backend. Counters live under a fixed
// prefix with the window as TTL.
type redisStore struct {
	client         *redis.Client
	maxAttempts    int
	windowDuration time.Duration
}

const redisKeyPrefix = "ratelimit:login:"

func (s *redisStore) allow(ctx context.Context, key string) (bool, error) {
	redisKey := redisKeyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return true, err
	}
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, s.windowDuration).Err(); err != nil {
			return true, err
		}
	}
	return count <= int64(s.maxAttempts), nil
}

func (s *redisStore) reset(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
