package setting

import (
	"context"
	"time"
)

// Provider reads typed configuration values. Every getter falls back to
// def when the key is missing, mistyped or unreadable; it never fails.
type Provider interface {
	GetInt(ctx context.Context, key string, def int) int
	GetFloat(ctx context.Context, key string, def float64) float64
	GetBool(ctx context.Context, key string, def bool) bool
	GetString(ctx context.Context, key string, def string) string
	GetDuration(ctx context.Context, key string, def time.Duration) time.Duration
}
