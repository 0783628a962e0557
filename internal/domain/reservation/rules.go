package reservation

import (
	"fmt"
	"math"
	"strconv"
	"time"

	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	spacevo "github.com/spacebook/spacebook/internal/domain/space/valueobjects"
	"github.com/spacebook/spacebook/internal/shared/biztime"
)

// Rule identifies an admission check. Checks run in the order the
// constants are declared and the first failure wins.
type Rule string

const (
	RuleRequiredFields    Rule = "required_fields"
	RuleUserExists        Rule = "user_exists"
	RuleSpaceExists       Rule = "space_exists"
	RuleEventCategory     Rule = "event_category"
	RuleAttendees         Rule = "attendees"
	RuleTimeOrder         Rule = "time_order"
	RuleLeadTime          Rule = "lead_time"
	RuleMaxDuration       Rule = "max_duration"
	RuleOperatingHours    Rule = "operating_hours"
	RuleSpaceAvailability Rule = "space_availability"
	RuleOverlap           Rule = "overlap"
)

// MsgSpaceAlreadyBooked is the conflict message for overlapping requests.
const MsgSpaceAlreadyBooked = "space already booked for that time"

// RuleViolation is returned by the admission checks.
type RuleViolation struct {
	Rule    Rule
	Message string
}

func (v *RuleViolation) Error() string {
	return v.Message
}

func violation(rule Rule, format string, args ...any) *RuleViolation {
	return &RuleViolation{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// WholeDaysBetween returns the number of complete 24h days from from to to,
// rounded toward negative infinity.
func WholeDaysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

// CheckLeadTime requires start to be at least minDays whole days after now.
// A start exactly minDays*24h away is accepted.
func CheckLeadTime(now, start time.Time, minDays int) error {
	if WholeDaysBetween(now, start) < minDays {
		return violation(RuleLeadTime, "reservations must be requested at least %d days in advance", minDays)
	}
	return nil
}

// CheckDuration caps the length of a reservation in hours.
func CheckDuration(period vo.TimeRange, maxHours float64) error {
	if period.Duration().Hours() > maxHours {
		return violation(RuleMaxDuration, "a reservation cannot last more than %s hours",
			strconv.FormatFloat(maxHours, 'f', -1, 64))
	}
	return nil
}

// CheckOperatingHours requires both the start and the end clock time, read
// in loc, to fall inside the space's operating window.
func CheckOperatingHours(period vo.TimeRange, window spacevo.OperatingWindow, loc *time.Location) error {
	if window.IsUnrestricted() {
		return nil
	}
	if !window.Contains(biztime.ClockOffset(period.Start(), loc)) ||
		!window.Contains(biztime.ClockOffset(period.End(), loc)) {
		return violation(RuleOperatingHours, "reservation must fall within the space operating hours (%s)", window)
	}
	return nil
}

// CheckNoOverlap fails when any of the existing reservations still blocks
// the calendar and overlaps period.
func CheckNoOverlap(period vo.TimeRange, existing []*Reservation) error {
	for _, r := range existing {
		if r.BlocksCalendar() && r.Overlaps(period) {
			return &RuleViolation{Rule: RuleOverlap, Message: MsgSpaceAlreadyBooked}
		}
	}
	return nil
}
