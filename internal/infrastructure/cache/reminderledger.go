// Package cache holds short-lived deduplication state.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// reminderKeyPrefix is the prefix for reminder deduplication keys.
// Format: spacebook:reminder:{reservation_id}
const reminderKeyPrefix = "spacebook:reminder:"

// RedisReminderLedger deduplicates event reminders across worker instances.
type RedisReminderLedger struct {
	client *redis.Client
}

func NewRedisReminderLedger(client *redis.Client) *RedisReminderLedger {
	return &RedisReminderLedger{client: client}
}

func (l *RedisReminderLedger) buildKey(reservationID uint) string {
	return fmt.Sprintf("%s%d", reminderKeyPrefix, reservationID)
}

// MarkSent atomically claims the reminder for reservationID. It returns
// false when another pass already claimed it within ttl.
func (l *RedisReminderLedger) MarkSent(ctx context.Context, reservationID uint, ttl time.Duration) (bool, error) {
	acquired, err := l.client.SetNX(ctx, l.buildKey(reservationID), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark reminder: %w", err)
	}
	return acquired, nil
}

// MemoryReminderLedger is the single-process fallback. Expired marks are
// dropped lazily.
type MemoryReminderLedger struct {
	mu      sync.Mutex
	expires map[uint]time.Time
	now     func() time.Time
}

func NewMemoryReminderLedger() *MemoryReminderLedger {
	return &MemoryReminderLedger{
		expires: make(map[uint]time.Time),
		now:     time.Now,
	}
}

func (l *MemoryReminderLedger) MarkSent(_ context.Context, reservationID uint, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for id, exp := range l.expires {
		if !now.Before(exp) {
			delete(l.expires, id)
		}
	}
	if _, ok := l.expires[reservationID]; ok {
		return false, nil
	}
	l.expires[reservationID] = now.Add(ttl)
	return true, nil
}
