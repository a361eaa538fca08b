package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/observability"

	"github.com/redis/go-redis/v9"
)

const DashboardKeyPrefix = "dashboard:%d"

const DashboardTTL = 5 * time.Minute

func DashboardKey(userID uint) string {
	return fmt.Sprintf(DashboardKeyPrefix, userID)
}

// Store is a nil-safe cache-aside helper. A Store without a client always
// falls through to the loader.
type Store struct {
	client *redis.Client
}

// NewStore wraps client, which may be nil.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Enabled reports whether a Redis client is configured.
func (s *Store) Enabled() bool {
	return s != nil && s.client != nil
}

// Aside loads key into dest from Redis, or calls load to fill dest and then
// stores the JSON encoding for ttl. Cache failures never fail the call.
func (s *Store) Aside(ctx context.Context, key string, dest any, ttl time.Duration, load func() error) error {
	if !s.Enabled() {
		return load()
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
			observability.CacheLookups.WithLabelValues("hit").Inc()
			return nil
		}
		observability.CacheLookups.WithLabelValues("error").Inc()
	case errors.Is(err, redis.Nil):
		observability.CacheLookups.WithLabelValues("miss").Inc()
	default:
		observability.CacheLookups.WithLabelValues("error").Inc()
		middleware.Logger.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	if err := load(); err != nil {
		return err
	}

	payload, err := json.Marshal(dest)
	if err != nil {
		return nil
	}
	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return nil
}

func (s *Store) Invalidate(ctx context.Context, key string) {
	if s.Enabled() {
		s.client.Del(ctx, key)
	}
}

func (s *Store) InvalidateDashboard(ctx context.Context, userID uint) {
	s.Invalidate(ctx, DashboardKey(userID))
}
