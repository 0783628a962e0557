package valueobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    EventCategory
		wantErr bool
	}{
		{"academic", CategoryAcademic, false},
		{"académico", CategoryAcademic, false},
		{"ACADÉMICO", CategoryAcademic, false},
		{" academico ", CategoryAcademic, false},
		{"deportivo", CategorySports, false},
		{"Sports", CategorySports, false},
		{"cultural", CategoryCultural, false},
		{"administrativo", CategoryAdministrative, false},
		{"party", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEventCategory(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReservationStatus_Transitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusApproved))
	assert.True(t, StatusPending.CanTransitionTo(StatusRejected))
	assert.False(t, StatusApproved.CanTransitionTo(StatusRejected))
	assert.False(t, StatusRejected.CanTransitionTo(StatusApproved))
	assert.False(t, StatusApproved.CanTransitionTo(StatusApproved))

	assert.True(t, StatusPending.BlocksCalendar())
	assert.True(t, StatusApproved.BlocksCalendar())
	assert.False(t, StatusRejected.BlocksCalendar())
}

func TestTimeRange(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 5, 4, h, 0, 0, 0, time.UTC) }
	mustRange := func(s, e int) TimeRange {
		r, err := NewTimeRange(at(s), at(e))
		require.NoError(t, err)
		return r
	}

	_, err := NewTimeRange(at(12), at(12))
	assert.ErrorIs(t, err, ErrStartNotBeforeEnd)
	_, err = NewTimeRange(at(13), at(12))
	assert.ErrorIs(t, err, ErrStartNotBeforeEnd)

	a := mustRange(10, 12)
	assert.True(t, a.Overlaps(mustRange(11, 13)))
	assert.True(t, a.Overlaps(mustRange(9, 11)))
	assert.True(t, a.Overlaps(mustRange(10, 12)))
	assert.True(t, a.Overlaps(mustRange(10, 11)))
	assert.False(t, a.Overlaps(mustRange(12, 14)), "touching at end is not an overlap")
	assert.False(t, a.Overlaps(mustRange(8, 10)), "touching at start is not an overlap")
	assert.Equal(t, 2*time.Hour, a.Duration())
}
