package valueobjects

import "fmt"

// ReservationStatus is the review state of a reservation. Cancellation is
// not a status of its own: a cancelled reservation is rejected with a
// fixed reason and a canceller stamp.
type ReservationStatus string

const (
	StatusPending  ReservationStatus = "pending"
	StatusApproved ReservationStatus = "approved"
	StatusRejected ReservationStatus = "rejected"
)

// Only pending reservations move; both targets are terminal.
var statusTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending: {StatusApproved, StatusRejected},
}

func (s ReservationStatus) String() string {
	return string(s)
}

func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BlocksCalendar reports whether a reservation in this status occupies
// its time slot.
func (s ReservationStatus) BlocksCalendar() bool {
	return s != StatusRejected
}

func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid reservation status: %s", s)
	}
	return status, nil
}
