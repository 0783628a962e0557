package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReminderLedger(t *testing.T) {
	l := NewMemoryReminderLedger()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	first, err := l.MarkSent(ctx, 1, time.Hour)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := l.MarkSent(ctx, 1, time.Hour)
	require.NoError(t, err)
	assert.False(t, again)

	other, err := l.MarkSent(ctx, 2, time.Hour)
	require.NoError(t, err)
	assert.True(t, other)

	now = now.Add(time.Hour)
	expired, err := l.MarkSent(ctx, 1, time.Hour)
	require.NoError(t, err)
	assert.True(t, expired)
}

func TestRedisReminderLedger(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379", DB: 15})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	defer client.Close()

	l := NewRedisReminderLedger(client)
	key := l.buildKey(424242)
	client.Del(ctx, key)
	defer client.Del(context.Background(), key)

	first, err := l.MarkSent(ctx, 424242, time.Minute)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := l.MarkSent(ctx, 424242, time.Minute)
	require.NoError(t, err)
	assert.False(t, again)
}

func TestRedisReminderLedger_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	_, err := NewRedisReminderLedger(client).MarkSent(context.Background(), 1, time.Minute)
	assert.Error(t, err)
}

func TestReminderKey(t *testing.T) {
	assert.Equal(t, "spacebook:reminder:7", NewRedisReminderLedger(nil).buildKey(7))
}
