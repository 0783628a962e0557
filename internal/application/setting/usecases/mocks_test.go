package usecases

import (
	"context"
	"sync"

	"github.com/spacebook/spacebook/internal/domain/setting"
)

// memorySettingRepository keeps entries in a map and counts reads.
type memorySettingRepository struct {
	mu      sync.Mutex
	entries map[string]*setting.Setting
	reads   int
	GetErr  error
	nextID  uint
}

func newMemorySettingRepository(entries ...*setting.Setting) *memorySettingRepository {
	r := &memorySettingRepository{entries: make(map[string]*setting.Setting)}
	for _, s := range entries {
		r.nextID++
		s.SetID(r.nextID)
		r.entries[s.Key()] = s
	}
	return r
}

func (r *memorySettingRepository) GetByKey(ctx context.Context, key string) (*setting.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	s, ok := r.entries[key]
	if !ok {
		return nil, setting.ErrSettingNotFound
	}
	return s, nil
}

func (r *memorySettingRepository) GetAll(ctx context.Context) ([]*setting.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*setting.Setting, 0, len(r.entries))
	for _, s := range r.entries {
		out = append(out, s)
	}
	return out, nil
}

func (r *memorySettingRepository) Upsert(ctx context.Context, s *setting.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.entries[s.Key()]; ok {
		s.SetID(existing.ID())
	} else {
		r.nextID++
		s.SetID(r.nextID)
	}
	r.entries[s.Key()] = s
	return nil
}

func (r *memorySettingRepository) readCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads
}

type recordingNotifier struct {
	keys []string
}

func (n *recordingNotifier) Invalidate(keys ...string) {
	n.keys = append(n.keys, keys...)
}

func mustSetting(key, value string, t setting.ValueType) *setting.Setting {
	s, err := setting.NewSetting(key, value, t, "")
	if err != nil {
		panic(err)
	}
	return s
}
