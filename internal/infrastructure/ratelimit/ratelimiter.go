// Package ratelimit counts requests per key in fixed windows. The Redis
// limiter shares counters across instances; the memory limiter serves
// single-instance deployments and tests.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter interface {
	// Allow counts one request for key and reports whether it fits in the
	// current window.
	Allow(ctx context.Context, key string) (bool, error)
}

type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window, now: time.Now}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.now().Unix() / int64(l.window.Seconds())
	redisKey := fmt.Sprintf("spacebook:ratelimit:%s:%d", key, bucket)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate counter: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window+time.Second).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate counter ttl: %w", err)
		}
	}
	return count <= int64(l.limit), nil
}

type memoryWindow struct {
	bucket int64
	count  int
}

type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	windows map[string]*memoryWindow
	now     func() time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		windows: make(map[string]*memoryWindow),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	bucket := l.now().Unix() / int64(l.window.Seconds())

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || w.bucket != bucket {
		// stale keys from earlier windows are dropped lazily
		if len(l.windows) > 10000 {
			for k, old := range l.windows {
				if old.bucket != bucket {
					delete(l.windows, k)
				}
			}
		}
		w = &memoryWindow{bucket: bucket}
		l.windows[key] = w
	}
	w.count++
	return w.count <= l.limit, nil
}
