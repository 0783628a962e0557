package usecases

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spacebook/spacebook/internal/domain/setting"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

const defaultProviderTTL = 30 * time.Second

type cachedSetting struct {
	value    string
	found    bool
	loadedAt time.Time
}

// SettingProvider implements setting.Provider on top of the repository.
// Values are cached briefly; writes through UpsertSettingUseCase invalidate
// the cache so a changed threshold applies to the next request.
type SettingProvider struct {
	settingRepo setting.Repository
	logger      logger.Interface
	ttl         time.Duration
	now         func() time.Time

	mu    sync.RWMutex
	cache map[string]cachedSetting
}

var _ setting.Provider = (*SettingProvider)(nil)

func NewSettingProvider(settingRepo setting.Repository, logger logger.Interface) *SettingProvider {
	return &SettingProvider{
		settingRepo: settingRepo,
		logger:      logger,
		ttl:         defaultProviderTTL,
		now:         time.Now,
		cache:       make(map[string]cachedSetting),
	}
}

// WithTTL changes the cache lifetime. Zero disables caching.
func (p *SettingProvider) WithTTL(ttl time.Duration) *SettingProvider {
	p.ttl = ttl
	return p
}

// Invalidate drops cached values for the given keys, or all when none given.
func (p *SettingProvider) Invalidate(keys ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(keys) == 0 {
		p.cache = make(map[string]cachedSetting)
		return
	}
	for _, k := range keys {
		delete(p.cache, k)
	}
}

func (p *SettingProvider) lookup(ctx context.Context, key string) (string, bool) {
	if p.ttl > 0 {
		p.mu.RLock()
		c, ok := p.cache[key]
		p.mu.RUnlock()
		if ok && p.now().Sub(c.loadedAt) < p.ttl {
			return c.value, c.found
		}
	}

	s, err := p.settingRepo.GetByKey(ctx, key)
	if err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			// do not cache transient failures
			p.logger.Warnw("failed to read setting, using default", "key", key, "error", err)
			return "", false
		}
		p.store(key, "", false)
		return "", false
	}

	p.store(key, s.Value(), true)
	return s.Value(), true
}

func (p *SettingProvider) store(key, value string, found bool) {
	if p.ttl <= 0 {
		return
	}
	p.mu.Lock()
	p.cache[key] = cachedSetting{value: value, found: found, loadedAt: p.now()}
	p.mu.Unlock()
}

// GetInt rounds fractional values up, so a stored 1.5 day minimum never
// weakens into 1.
func (p *SettingProvider) GetInt(ctx context.Context, key string, def int) int {
	raw, ok := p.lookup(ctx, key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		p.logger.Warnw("setting is not numeric, using default", "key", key, "value", raw, "default", def)
		return def
	}
	if f != math.Trunc(f) {
		p.logger.Warnw("setting is not a whole number, rounding up", "key", key, "value", raw)
		return int(math.Ceil(f))
	}
	return int(f)
}

func (p *SettingProvider) GetFloat(ctx context.Context, key string, def float64) float64 {
	raw, ok := p.lookup(ctx, key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		p.logger.Warnw("setting is not numeric, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return f
}

func (p *SettingProvider) GetBool(ctx context.Context, key string, def bool) bool {
	raw, ok := p.lookup(ctx, key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		p.logger.Warnw("setting is not boolean, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return b
}

func (p *SettingProvider) GetString(ctx context.Context, key string, def string) string {
	raw, ok := p.lookup(ctx, key)
	if !ok {
		return def
	}
	return raw
}

// GetDuration accepts Go duration text ("90m") or a bare number of seconds.
func (p *SettingProvider) GetDuration(ctx context.Context, key string, def time.Duration) time.Duration {
	raw, ok := p.lookup(ctx, key)
	if !ok {
		return def
	}
	raw = strings.TrimSpace(raw)
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Duration(secs * float64(time.Second))
	}
	p.logger.Warnw("setting is not a duration, using default", "key", key, "value", raw, "default", def)
	return def
}
