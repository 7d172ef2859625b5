package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

const DefaultRedisPrefix = "kanso:"

var _ domain.Slot = (*RedisSlot)(nil)

type RedisSlot struct {
	rdb *redis.Client
	key string
}

func NewRedisSlot(rdb *redis.Client, key string) *RedisSlot {
	return &RedisSlot{
		rdb: rdb,
		key: DefaultRedisPrefix + key,
	}
}

func (s *RedisSlot) Name() string {
	return "redis"
}

func (s *RedisSlot) Read(ctx context.Context) ([]byte, error) {
	val, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSlotEmpty
		}
		return nil, err
	}
	return val, nil
}

func (s *RedisSlot) Write(ctx context.Context, data []byte) error {
	return s.rdb.Set(ctx, s.key, data, 0).Err()
}
