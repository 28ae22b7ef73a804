package repository

import (
	"context"
	"time"
)

// CacheRepository - внешнее хранилище ответов upstream (второй уровень кеша)
type CacheRepository interface {
	// Get получает значение из кеша по ключу; (nil, nil) означает промах
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
