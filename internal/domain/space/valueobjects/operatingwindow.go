package valueobjects

import (
	"fmt"
	"time"

	"github.com/spacebook/spacebook/internal/domain/shared/clock"
)

// OperatingWindow bounds the local clock times at which a space may be used.
// Either bound may be absent; an absent bound does not restrict.
type OperatingWindow struct {
	opening *clock.Time
	closing *clock.Time
}

// NewOperatingWindow validates that opening precedes closing when both exist.
func NewOperatingWindow(opening, closing *clock.Time) (OperatingWindow, error) {
	if opening != nil && closing != nil && !opening.Before(*closing) {
		return OperatingWindow{}, fmt.Errorf("opening time %s must be before closing time %s", opening, closing)
	}
	return OperatingWindow{opening: opening, closing: closing}, nil
}

// ParseOperatingWindow parses optional "HH:MM[:SS]" strings; empty means absent.
func ParseOperatingWindow(opening, closing string) (OperatingWindow, error) {
	var from, to *clock.Time
	if opening != "" {
		t, err := clock.Parse(opening)
		if err != nil {
			return OperatingWindow{}, err
		}
		from = &t
	}
	if closing != "" {
		t, err := clock.Parse(closing)
		if err != nil {
			return OperatingWindow{}, err
		}
		to = &t
	}
	return NewOperatingWindow(from, to)
}

func (w OperatingWindow) Opening() *clock.Time { return w.opening }
func (w OperatingWindow) Closing() *clock.Time { return w.closing }

// IsUnrestricted reports whether neither bound is set.
func (w OperatingWindow) IsUnrestricted() bool {
	return w.opening == nil && w.closing == nil
}

// Contains reports whether a clock offset lies within [opening, closing].
// Both bounds are inclusive so that a reservation may end exactly at closing.
func (w OperatingWindow) Contains(offset time.Duration) bool {
	if w.opening != nil && offset < w.opening.Offset() {
		return false
	}
	if w.closing != nil && offset > w.closing.Offset() {
		return false
	}
	return true
}

// String renders the window for error messages, e.g. "08:00:00-22:00:00".
func (w OperatingWindow) String() string {
	from, to := "*", "*"
	if w.opening != nil {
		from = w.opening.String()
	}
	if w.closing != nil {
		to = w.closing.String()
	}
	return from + "-" + to
}
