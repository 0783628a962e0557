// Package clock models a wall-clock time of day such as an opening hour.
package clock

import (
	"fmt"
	"strings"
	"time"
)

// Time is a time of day in [00:00:00, 24:00:00]. The zero value is midnight.
type Time struct {
	offset time.Duration
}

const endOfDay = 24 * time.Hour

// Parse accepts "HH:MM" or "HH:MM:SS". "24:00" denotes end of day.
func Parse(s string) (Time, error) {
	s = strings.TrimSpace(s)
	var h, m, sec int
	var err error
	switch strings.Count(s, ":") {
	case 1:
		_, err = fmt.Sscanf(s, "%d:%d", &h, &m)
	case 2:
		_, err = fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec)
	default:
		return Time{}, fmt.Errorf("invalid clock time %q: expected HH:MM[:SS]", s)
	}
	if err != nil {
		return Time{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return Time{}, fmt.Errorf("invalid clock time %q", s)
	}
	offset := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second
	if offset > endOfDay {
		return Time{}, fmt.Errorf("invalid clock time %q: beyond end of day", s)
	}
	return Time{offset: offset}, nil
}

// MustParse is Parse for constants and tests.
func MustParse(s string) Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FromOffset builds a Time from the duration since midnight.
func FromOffset(d time.Duration) Time {
	return Time{offset: d}
}

// Offset returns the duration since midnight.
func (t Time) Offset() time.Duration { return t.offset }

func (t Time) Before(other Time) bool { return t.offset < other.offset }

// String renders HH:MM:SS.
func (t Time) String() string {
	total := int(t.offset / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
