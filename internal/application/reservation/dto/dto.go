package dto

import (
	"time"

	"github.com/spacebook/spacebook/internal/domain/reservation"
)

type ReservationDTO struct {
	ID              uint       `json:"id"`
	UserID          uint       `json:"user_id"`
	SpaceID         uint       `json:"space_id"`
	Start           time.Time  `json:"start"`
	End             time.Time  `json:"end"`
	EventCategory   string     `json:"event_category"`
	Attendees       int        `json:"attendees"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	Documents       []string   `json:"documents"`
	ApprovedBy      *uint      `json:"approved_by,omitempty"`
	RejectedBy      *uint      `json:"rejected_by,omitempty"`
	CancelledBy     *uint      `json:"cancelled_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type HistoryEntryDTO struct {
	ID            uint           `json:"id"`
	ReservationID uint           `json:"reservation_id"`
	Action        string         `json:"action"`
	ActorID       uint           `json:"actor_id"`
	Details       map[string]any `json:"details,omitempty"`
	Note          string         `json:"note,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// BusySlotDTO is an approved booking inside an availability window.
type BusySlotDTO struct {
	ReservationID uint      `json:"reservation_id"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	EventCategory string    `json:"event_category"`
}

type AvailabilityDTO struct {
	SpaceID uint          `json:"space_id"`
	From    time.Time     `json:"from"`
	To      time.Time     `json:"to"`
	Busy    []BusySlotDTO `json:"busy"`
}

// CreateReservationRequest is the body of POST /reservations. The owner is
// the authenticated caller.
type CreateReservationRequest struct {
	SpaceID       uint      `json:"space_id"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	EventCategory string    `json:"event_category"`
	Attendees     int       `json:"attendees"`
	Documents     []string  `json:"documents"`
}

type RejectReservationRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

// TransitionNoteRequest is the optional body of approve, reactivate and
// deactivate calls.
type TransitionNoteRequest struct {
	Note string `json:"note" binding:"max=1000"`
}

// UpdateReservationRequest is a staff edit; nil fields are unchanged.
type UpdateReservationRequest struct {
	Start         *time.Time `json:"start"`
	End           *time.Time `json:"end"`
	EventCategory *string    `json:"event_category"`
	Attendees     *int       `json:"attendees"`
	Documents     *[]string  `json:"documents"`
	Note          string     `json:"note" binding:"max=1000"`
}

func ToReservationDTO(r *reservation.Reservation) *ReservationDTO {
	docs := r.Documents()
	if docs == nil {
		docs = []string{}
	}
	return &ReservationDTO{
		ID:              r.ID(),
		UserID:          r.UserID(),
		SpaceID:         r.SpaceID(),
		Start:           r.Start(),
		End:             r.End(),
		EventCategory:   r.Category().String(),
		Attendees:       r.Attendees(),
		Status:          r.Status().String(),
		RejectionReason: r.RejectionReason(),
		Documents:       docs,
		ApprovedBy:      r.ApprovedBy(),
		RejectedBy:      r.RejectedBy(),
		CancelledBy:     r.CancelledBy(),
		ApprovedAt:      r.ApprovedAt(),
		RejectedAt:      r.RejectedAt(),
		CancelledAt:     r.CancelledAt(),
		IsActive:        r.IsActive(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

func ToReservationDTOs(list []*reservation.Reservation) []*ReservationDTO {
	out := make([]*ReservationDTO, 0, len(list))
	for _, r := range list {
		out = append(out, ToReservationDTO(r))
	}
	return out
}

func ToHistoryEntryDTOs(entries []*reservation.HistoryEntry) []*HistoryEntryDTO {
	out := make([]*HistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, &HistoryEntryDTO{
			ID:            e.ID(),
			ReservationID: e.ReservationID(),
			Action:        e.Action().String(),
			ActorID:       e.ActorID(),
			Details:       e.Details(),
			Note:          e.Note(),
			CreatedAt:     e.CreatedAt(),
		})
	}
	return out
}
