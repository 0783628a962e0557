package reservation

import (
	"fmt"
	"slices"
	"strings"
	"time"

	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	"github.com/spacebook/spacebook/internal/shared/biztime"
)

// CancellationReason is stored as the rejection reason of a reservation
// its owner withdrew.
const CancellationReason = "cancelled by user"

// Reservation is a request to use a space for a time period.
//
// Status starts at pending and moves at most once, to approved or rejected.
// Soft deletion is tracked separately by the active flag. Exactly one of the
// approval, rejection and cancellation stamps is set once status leaves
// pending.
type Reservation struct {
	id              uint
	userID          uint
	spaceID         uint
	period          vo.TimeRange
	category        vo.EventCategory
	attendees       int
	status          vo.ReservationStatus
	rejectionReason *string
	documents       []string
	approvedBy      *uint
	rejectedBy      *uint
	cancelledBy     *uint
	approvedAt      *time.Time
	rejectedAt      *time.Time
	cancelledAt     *time.Time
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReservation(
	userID, spaceID uint,
	period vo.TimeRange,
	category vo.EventCategory,
	attendees int,
	documents []string,
) (*Reservation, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if spaceID == 0 {
		return nil, fmt.Errorf("space ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid event type: %s", category)
	}
	if attendees <= 0 {
		return nil, ErrInvalidAttendees
	}

	now := biztime.NowUTC()
	return &Reservation{
		userID:    userID,
		spaceID:   spaceID,
		period:    period,
		category:  category,
		attendees: attendees,
		status:    vo.StatusPending,
		documents: cleanDocuments(documents),
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructReservation rebuilds a Reservation from persistence.
func ReconstructReservation(
	id, userID, spaceID uint,
	period vo.TimeRange,
	category vo.EventCategory,
	attendees int,
	status vo.ReservationStatus,
	rejectionReason *string,
	documents []string,
	approvedBy, rejectedBy, cancelledBy *uint,
	approvedAt, rejectedAt, cancelledAt *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Reservation, error) {
	if id == 0 {
		return nil, fmt.Errorf("reservation ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid reservation status: %s", status)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid event type: %s", category)
	}
	return &Reservation{
		id:              id,
		userID:          userID,
		spaceID:         spaceID,
		period:          period,
		category:        category,
		attendees:       attendees,
		status:          status,
		rejectionReason: rejectionReason,
		documents:       documents,
		approvedBy:      approvedBy,
		rejectedBy:      rejectedBy,
		cancelledBy:     cancelledBy,
		approvedAt:      approvedAt,
		rejectedAt:      rejectedAt,
		cancelledAt:     cancelledAt,
		isActive:        isActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (r *Reservation) ID() uint                         { return r.id }
func (r *Reservation) UserID() uint                     { return r.userID }
func (r *Reservation) SpaceID() uint                    { return r.spaceID }
func (r *Reservation) Period() vo.TimeRange             { return r.period }
func (r *Reservation) Start() time.Time                 { return r.period.Start() }
func (r *Reservation) End() time.Time                   { return r.period.End() }
func (r *Reservation) Category() vo.EventCategory       { return r.category }
func (r *Reservation) Attendees() int                   { return r.attendees }
func (r *Reservation) Status() vo.ReservationStatus     { return r.status }
func (r *Reservation) RejectionReason() *string         { return r.rejectionReason }
func (r *Reservation) Documents() []string              { return r.documents }
func (r *Reservation) ApprovedBy() *uint                { return r.approvedBy }
func (r *Reservation) RejectedBy() *uint                { return r.rejectedBy }
func (r *Reservation) CancelledBy() *uint               { return r.cancelledBy }
func (r *Reservation) ApprovedAt() *time.Time           { return r.approvedAt }
func (r *Reservation) RejectedAt() *time.Time           { return r.rejectedAt }
func (r *Reservation) CancelledAt() *time.Time          { return r.cancelledAt }
func (r *Reservation) IsActive() bool                   { return r.isActive }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }
func (r *Reservation) IsOwnedBy(userID uint) bool       { return r.userID == userID }
func (r *Reservation) IsCancelled() bool                { return r.cancelledBy != nil }
func (r *Reservation) Overlaps(other vo.TimeRange) bool { return r.period.Overlaps(other) }
func (r *Reservation) SetID(id uint)                    { r.id = id }

// BlocksCalendar reports whether the reservation currently occupies its slot.
func (r *Reservation) BlocksCalendar() bool {
	return r.isActive && r.status.BlocksCalendar()
}

// Approve moves a pending reservation to approved.
func (r *Reservation) Approve(actorID uint, at time.Time) error {
	if !r.status.CanTransitionTo(vo.StatusApproved) {
		return ErrNotPending
	}
	r.status = vo.StatusApproved
	r.rejectionReason = nil
	r.approvedBy = &actorID
	r.approvedAt = &at
	r.updatedAt = at
	return nil
}

// Reject moves a pending reservation to rejected. The reason is checked
// before anything else so an empty reason never mutates the reservation.
func (r *Reservation) Reject(actorID uint, reason string, at time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrRejectionReasonRequired
	}
	if !r.status.CanTransitionTo(vo.StatusRejected) {
		return ErrNotPending
	}
	r.status = vo.StatusRejected
	r.rejectionReason = &reason
	r.rejectedBy = &actorID
	r.rejectedAt = &at
	r.updatedAt = at
	return nil
}

// Cancel withdraws a pending reservation on behalf of its owner.
func (r *Reservation) Cancel(actorID uint, at time.Time) error {
	if !r.IsOwnedBy(actorID) {
		return ErrNotOwner
	}
	if !r.status.CanTransitionTo(vo.StatusRejected) {
		return ErrNotPending
	}
	reason := CancellationReason
	r.status = vo.StatusRejected
	r.rejectionReason = &reason
	r.cancelledBy = &actorID
	r.cancelledAt = &at
	r.updatedAt = at
	return nil
}

// Deactivate soft-deletes the reservation. It returns false if it was
// already inactive.
func (r *Reservation) Deactivate(at time.Time) bool {
	if !r.isActive {
		return false
	}
	r.isActive = false
	r.updatedAt = at
	return true
}

// Reactivate restores a soft-deleted reservation. It returns false if it
// was already active.
func (r *Reservation) Reactivate(at time.Time) bool {
	if r.isActive {
		return false
	}
	r.isActive = true
	r.updatedAt = at
	return true
}

// ensureEditable rejects edits to reservations that no longer hold a slot.
func (r *Reservation) ensureEditable() error {
	if !r.isActive || r.status == vo.StatusRejected {
		return ErrNotEditable
	}
	return nil
}

func (r *Reservation) Reschedule(period vo.TimeRange, at time.Time) error {
	if err := r.ensureEditable(); err != nil {
		return err
	}
	r.period = period
	r.updatedAt = at
	return nil
}

func (r *Reservation) ChangeCategory(category vo.EventCategory, at time.Time) error {
	if err := r.ensureEditable(); err != nil {
		return err
	}
	if !category.IsValid() {
		return fmt.Errorf("invalid event type: %s", category)
	}
	r.category = category
	r.updatedAt = at
	return nil
}

func (r *Reservation) ChangeAttendees(attendees int, at time.Time) error {
	if err := r.ensureEditable(); err != nil {
		return err
	}
	if attendees <= 0 {
		return ErrInvalidAttendees
	}
	r.attendees = attendees
	r.updatedAt = at
	return nil
}

func (r *Reservation) ReplaceDocuments(documents []string, at time.Time) error {
	if err := r.ensureEditable(); err != nil {
		return err
	}
	r.documents = cleanDocuments(documents)
	r.updatedAt = at
	return nil
}

func cleanDocuments(docs []string) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		if d = strings.TrimSpace(d); d != "" && !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	return out
}
