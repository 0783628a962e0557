package reservation

import (
	"context"
	"time"

	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
)

// Filter narrows FindByFilters. Nil fields do not filter.
type Filter struct {
	SpaceID *uint
	UserID  *uint
	Status  *vo.ReservationStatus
}

// Repository persists reservations. Every finder except GetByID only
// returns active reservations.
type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	// GetByID returns ErrReservationNotFound for unknown IDs. Inactive
	// reservations are returned.
	GetByID(ctx context.Context, id uint) (*Reservation, error)
	// GetByIDForUpdate is GetByID holding a row lock until the surrounding
	// transaction ends.
	GetByIDForUpdate(ctx context.Context, id uint) (*Reservation, error)
	Update(ctx context.Context, r *Reservation) error

	// FindConflicting returns active reservations of the space whose period
	// overlaps the given one, skipping the excluded statuses and IDs.
	FindConflicting(ctx context.Context, spaceID uint, period vo.TimeRange, excludeStatuses []vo.ReservationStatus, excludeIDs ...uint) ([]*Reservation, error)
	// FindByUser lists a user's reservations, latest start first.
	FindByUser(ctx context.Context, userID uint) ([]*Reservation, error)
	FindByFilters(ctx context.Context, filter Filter) ([]*Reservation, error)
	// FindAvailabilityWindow lists approved reservations of the space that
	// overlap the window, earliest start first.
	FindAvailabilityWindow(ctx context.Context, spaceID uint, window vo.TimeRange) ([]*Reservation, error)
	// FindUpcomingApproved lists approved reservations starting in [from, to).
	FindUpcomingApproved(ctx context.Context, from, to time.Time) ([]*Reservation, error)
}

// HistoryRepository is the append-only audit log.
type HistoryRepository interface {
	Append(ctx context.Context, entry *HistoryEntry) error
	// ListByReservation returns entries oldest first.
	ListByReservation(ctx context.Context, reservationID uint) ([]*HistoryEntry, error)
}
