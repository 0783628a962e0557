package valueobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatingWindow_Contains(t *testing.T) {
	w, err := ParseOperatingWindow("08:00", "22:00")
	require.NoError(t, err)

	assert.True(t, w.Contains(8*time.Hour))
	assert.True(t, w.Contains(22*time.Hour))
	assert.True(t, w.Contains(12*time.Hour))
	assert.False(t, w.Contains(7*time.Hour+59*time.Minute))
	assert.False(t, w.Contains(22*time.Hour+time.Second))
	assert.Equal(t, "08:00:00-22:00:00", w.String())
}

func TestOperatingWindow_PartialBounds(t *testing.T) {
	openOnly, err := ParseOperatingWindow("09:00", "")
	require.NoError(t, err)
	assert.False(t, openOnly.Contains(8*time.Hour))
	assert.True(t, openOnly.Contains(23*time.Hour))

	unrestricted, err := ParseOperatingWindow("", "")
	require.NoError(t, err)
	assert.True(t, unrestricted.IsUnrestricted())
	assert.True(t, unrestricted.Contains(3*time.Hour))
}

func TestOperatingWindow_Invalid(t *testing.T) {
	_, err := ParseOperatingWindow("22:00", "08:00")
	assert.Error(t, err)

	_, err = ParseOperatingWindow("nine", "")
	assert.Error(t, err)
}
