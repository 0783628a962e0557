package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockOffset(t *testing.T) {
	ts := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, 15*time.Hour+30*time.Minute, ClockOffset(ts, time.UTC))

	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	// UTC-5, no DST
	assert.Equal(t, 10*time.Hour+30*time.Minute, ClockOffset(ts, bogota))
}

func TestClockOffset_DSTTransitionDays(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name string
		ts   time.Time
		want time.Duration
	}{
		{"spring forward", time.Date(2026, 3, 8, 10, 0, 0, 0, newYork), 10 * time.Hour},
		{"fall back", time.Date(2026, 11, 1, 18, 15, 0, 0, newYork), 18*time.Hour + 15*time.Minute},
		{"after the gap", time.Date(2026, 3, 8, 3, 30, 0, 0, newYork), 3*time.Hour + 30*time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockOffset(tt.ts.UTC(), newYork))
		})
	}
}

func TestInit_InvalidZone(t *testing.T) {
	assert.Error(t, Init("Nowhere/Atlantis"))
}
