package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/transit-graph/internal/domain/repository"
	"go.uber.org/zap"
)

const upstreamKeyPrefix = "upstream:"

type redisStore struct {
	client redis.Cmdable
	logger *zap.Logger
}

// NewRedisStore - второй уровень кеша ответов upstream в Redis,
// общий для всех экземпляров сервиса
func NewRedisStore(r *Redis) repository.CacheRepository {
	return &redisStore{
		client: r.Client(),
		logger: r.logger,
	}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, upstreamKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		s.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	s.logger.Debug("Redis cache hit", zap.String("key", key))
	return val, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := s.client.Set(ctx, upstreamKeyPrefix+key, value, ttl).Err()
	if err != nil {
		s.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	s.logger.Debug("Redis cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}
