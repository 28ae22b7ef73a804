package ruter

import (
	"context"
	"encoding/json"
	"time"

	"github.com/transit-graph/internal/domain/repository"
	"github.com/transit-graph/internal/repository/cache"
	"go.uber.org/zap"
)

type cachedFetcher struct {
	next     Fetcher
	cache    *cache.ResponseCache
	store    repository.CacheRepository
	storeTTL time.Duration
	logger   *zap.Logger
}

// NewCachedFetcher ставит ResponseCache перед next.
// store is an optional second level shared between instances, may be nil.
func NewCachedFetcher(
	next Fetcher,
	responseCache *cache.ResponseCache,
	store repository.CacheRepository,
	storeTTL time.Duration,
	logger *zap.Logger,
) Fetcher {
	return &cachedFetcher{
		next:     next,
		cache:    responseCache,
		store:    store,
		storeTTL: storeTTL,
		logger:   logger,
	}
}

func (f *cachedFetcher) Fetch(ctx context.Context, rawURL string, params Params) ([]byte, error) {
	key := CacheKey(rawURL, params)

	return f.cache.GetOrFetch(ctx, key, func(ctx context.Context) ([]byte, error) {
		if f.store != nil {
			body, err := f.store.Get(ctx, key)
			if err != nil {
				f.logger.Warn("Second level cache unavailable", zap.Error(err))
			} else if body != nil {
				return body, nil
			}
		}

		body, err := f.next.Fetch(ctx, rawURL, params)
		if err != nil {
			return nil, err
		}

		if f.store != nil {
			if err := f.store.Set(ctx, key, body, f.storeTTL); err != nil {
				f.logger.Warn("Failed to populate second level cache", zap.Error(err))
			}
		}
		return body, nil
	})
}

// CacheKey - URL плюс JSON параметров. encoding/json sorts map keys,
// so equal parameter sets always give the same key.
func CacheKey(rawURL string, params Params) string {
	if len(params) == 0 {
		return rawURL + "{}"
	}
	encoded, err := json.Marshal(params)
	if err != nil {
		return buildURL(rawURL, params)
	}
	return rawURL + string(encoded)
}
