package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// FetchFunc загружает значение при промахе кеша
type FetchFunc func(ctx context.Context) ([]byte, error)

// call is one fetch, stored in the table before it completes so that
// concurrent callers with the same key wait on it instead of fetching again.
type call struct {
	done chan struct{}
	val  []byte
	err  error
}

// ResponseCache - ограниченный LRU кеш с TTL поверх upstream запросов.
// Хранит не только готовые ответы, но и запросы в процессе выполнения.
type ResponseCache struct {
	mu      sync.Mutex
	entries *expirable.LRU[string, *call]
	logger  *zap.Logger
}

// NewResponseCache создает кеш на capacity записей, каждая живет ttl
func NewResponseCache(capacity int, ttl time.Duration, logger *zap.Logger) *ResponseCache {
	return &ResponseCache{
		entries: expirable.NewLRU[string, *call](capacity, nil, ttl),
		logger:  logger,
	}
}

// GetOrFetch returns the stored result for key, waiting for it if the fetch
// is still running. On a miss it starts fetch and stores the pending call
// under key before fetch returns.
//
// The fetch runs detached from ctx: a caller that gives up only stops
// waiting, it never cancels a fetch other callers may share.
func (c *ResponseCache) GetOrFetch(ctx context.Context, key string, fetch FetchFunc) ([]byte, error) {
	c.mu.Lock()
	entry, hit := c.entries.Get(key)
	if !hit {
		entry = &call{done: make(chan struct{})}
		c.entries.Add(key, entry)
	}
	c.mu.Unlock()

	if hit {
		c.logger.Debug("Response cache hit", zap.String("key", key))
	} else {
		c.logger.Debug("Response cache miss", zap.String("key", key))
		go c.run(context.WithoutCancel(ctx), key, entry, fetch)
	}

	select {
	case <-entry.done:
		return entry.val, entry.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Len возвращает количество записей, включая незавершенные
func (c *ResponseCache) Len() int {
	return c.entries.Len()
}

func (c *ResponseCache) run(ctx context.Context, key string, entry *call, fetch FetchFunc) {
	defer close(entry.done)
	defer func() {
		if r := recover(); r != nil {
			entry.val, entry.err = nil, fmt.Errorf("response cache fetch panicked: %v", r)
			c.forget(key, entry)
		}
	}()

	entry.val, entry.err = fetch(ctx)
	if entry.err != nil {
		// Failures are shared with everyone already waiting, but not kept.
		c.forget(key, entry)
	}
}

func (c *ResponseCache) forget(key string, entry *call) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if current, ok := c.entries.Peek(key); ok && current == entry {
		c.entries.Remove(key)
	}
}
