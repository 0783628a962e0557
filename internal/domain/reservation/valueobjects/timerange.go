package valueobjects

import (
	"errors"
	"time"
)

var ErrStartNotBeforeEnd = errors.New("start must be before end")

// TimeRange is a half-open interval [start, end). Two ranges that only
// touch at an endpoint do not overlap.
type TimeRange struct {
	start time.Time
	end   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrStartNotBeforeEnd
	}
	return TimeRange{start: start.UTC(), end: end.UTC()}, nil
}

func (r TimeRange) Start() time.Time        { return r.start }
func (r TimeRange) End() time.Time          { return r.end }
func (r TimeRange) Duration() time.Duration { return r.end.Sub(r.start) }

// Overlaps reports whether r and other share any instant.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start.Before(other.end) && r.end.After(other.start)
}

func (r TimeRange) Equal(other TimeRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}
