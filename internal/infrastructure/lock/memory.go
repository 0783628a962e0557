package lock

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	ch   chan struct{}
	refs int
}

// MemoryLocker is a keyed mutex. Entries are dropped once no goroutine
// holds or waits for them.
type MemoryLocker struct {
	mu      sync.Mutex
	entries map[uint]*memoryEntry
	wait    time.Duration
}

func NewMemoryLocker(wait time.Duration) *MemoryLocker {
	return &MemoryLocker{
		entries: make(map[uint]*memoryEntry),
		wait:    wait,
	}
}

func (l *MemoryLocker) Acquire(ctx context.Context, spaceID uint) (Release, error) {
	l.mu.Lock()
	e, ok := l.entries[spaceID]
	if !ok {
		e = &memoryEntry{ch: make(chan struct{}, 1)}
		l.entries[spaceID] = e
	}
	e.refs++
	l.mu.Unlock()

	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(spaceID, e)
		return nil, ErrLockTimeout
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			l.unref(spaceID, e)
		})
	}, nil
}

func (l *MemoryLocker) unref(spaceID uint, e *memoryEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, spaceID)
	}
}

// size reports tracked keys; tests use it to check cleanup.
func (l *MemoryLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
