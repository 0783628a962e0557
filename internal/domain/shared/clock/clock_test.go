package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"08:00", 8 * time.Hour, false},
		{"22:00:00", 22 * time.Hour, false},
		{" 07:30:15 ", 7*time.Hour + 30*time.Minute + 15*time.Second, false},
		{"24:00", 24 * time.Hour, false},
		{"24:01", 0, true},
		{"8", 0, true},
		{"12:60", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Offset())
		})
	}
}

func TestTime_String(t *testing.T) {
	assert.Equal(t, "08:05:00", MustParse("8:05").String())
	assert.True(t, MustParse("08:00").Before(MustParse("22:00")))
}
