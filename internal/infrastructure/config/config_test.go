package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "America/Bogota", cfg.Booking.Timezone)
	assert.Equal(t, "memory", cfg.Booking.LockBackend)
	assert.Equal(t, 10*time.Second, cfg.Booking.LockTTL)
	assert.Equal(t, 15*time.Minute, cfg.Worker.ReminderInterval)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 30, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SPACEBOOK_DATABASE_DRIVER", "sqlite")
	t.Setenv("SPACEBOOK_BOOKING_TIMEZONE", "UTC")

	cfg, err := Load("release")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "UTC", cfg.Booking.Timezone)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_RejectsRedisLockWithoutRedis(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SPACEBOOK_BOOKING_LOCK_BACKEND", "redis")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_RejectsBadRateLimit(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SPACEBOOK_RATE_LIMIT_REQUESTS", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit")
}
