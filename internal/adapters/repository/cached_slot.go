package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

const DefaultCacheTTL = 30 * time.Minute

var _ domain.Slot = (*CachedSlot)(nil)

// CachedSlot puts a Redis read-through cache in front of another slot.
// Cache failures are logged and fall through to the underlying slot.
type CachedSlot struct {
	next   domain.Slot
	cache  *redis.Client
	key    string
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedSlot(next domain.Slot, cache *redis.Client, key string, logger *zap.Logger) *CachedSlot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSlot{
		next:   next,
		cache:  cache,
		key:    DefaultRedisPrefix + "cache:" + key,
		ttl:    DefaultCacheTTL,
		logger: logger.Named("cache"),
	}
}

func (s *CachedSlot) Name() string {
	return s.next.Name() + "+redis"
}

func (s *CachedSlot) invalidate(ctx context.Context) {
	if err := s.cache.Del(ctx, s.key).Err(); err != nil {
		s.logger.Warn("failed to invalidate cache", zap.String("key", s.key), zap.Error(err))
	}
}

func (s *CachedSlot) Read(ctx context.Context) ([]byte, error) {
	val, err := s.cache.Get(ctx, s.key).Bytes()
	if err == nil {
		if _, decErr := DecodeHabits(val); decErr == nil {
			return val, nil
		}
		s.logger.Warn("corrupted cache entry, cleaning up key", zap.String("key", s.key))
		s.invalidate(ctx)
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn("redis read error", zap.Error(err))
	}

	data, err := s.next.Read(ctx)
	if err != nil {
		return nil, err
	}

	if setErr := s.cache.Set(ctx, s.key, data, s.ttl).Err(); setErr != nil {
		s.logger.Warn("redis set error", zap.Error(setErr))
	}
	return data, nil
}

func (s *CachedSlot) Write(ctx context.Context, data []byte) error {
	if err := s.next.Write(ctx, data); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
