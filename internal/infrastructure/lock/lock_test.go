package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacebook/spacebook/internal/shared/logger"
)

func TestMemoryLocker_SerialisesSameSpace(t *testing.T) {
	l := NewMemoryLocker(time.Second)

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), 7)
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Zero(t, l.size())
}

func TestMemoryLocker_DifferentSpacesDoNotBlock(t *testing.T) {
	l := NewMemoryLocker(50 * time.Millisecond)

	releaseA, err := l.Acquire(context.Background(), 1)
	require.NoError(t, err)
	defer releaseA()

	releaseB, err := l.Acquire(context.Background(), 2)
	require.NoError(t, err)
	releaseB()
}

func TestMemoryLocker_TimesOut(t *testing.T) {
	l := NewMemoryLocker(20 * time.Millisecond)

	release, err := l.Acquire(context.Background(), 1)
	require.NoError(t, err)

	_, err = l.Acquire(context.Background(), 1)
	assert.ErrorIs(t, err, ErrLockTimeout)

	release()
	release()

	again, err := l.Acquire(context.Background(), 1)
	require.NoError(t, err)
	again()
	assert.Zero(t, l.size())
}

func TestMemoryLocker_HonoursContext(t *testing.T) {
	l := NewMemoryLocker(0)

	release, err := l.Acquire(context.Background(), 1)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Acquire(ctx, 1)
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestRedisLocker_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisLocker(client, time.Second, 100*time.Millisecond, logger.NewNop())
	_, err := l.Acquire(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLockTimeout)
}

func TestSpaceKey(t *testing.T) {
	assert.Equal(t, "spacebook:lock:space:42", spaceKey(42))
}
