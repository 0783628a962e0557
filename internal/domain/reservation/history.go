package reservation

import (
	"fmt"
	"time"

	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	"github.com/spacebook/spacebook/internal/shared/biztime"
)

// HistoryEntry is an append-only audit record of one reservation transition.
type HistoryEntry struct {
	id            uint
	reservationID uint
	action        vo.HistoryAction
	actorID       uint
	details       map[string]any
	note          string
	createdAt     time.Time
}

func NewHistoryEntry(reservationID uint, action vo.HistoryAction, actorID uint, details map[string]any, note string) (*HistoryEntry, error) {
	if reservationID == 0 {
		return nil, fmt.Errorf("reservation ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid history action: %s", action)
	}
	if details == nil {
		details = map[string]any{}
	}
	return &HistoryEntry{
		reservationID: reservationID,
		action:        action,
		actorID:       actorID,
		details:       details,
		note:          note,
		createdAt:     biztime.NowUTC(),
	}, nil
}

func ReconstructHistoryEntry(id, reservationID uint, action vo.HistoryAction, actorID uint, details map[string]any, note string, createdAt time.Time) *HistoryEntry {
	return &HistoryEntry{
		id:            id,
		reservationID: reservationID,
		action:        action,
		actorID:       actorID,
		details:       details,
		note:          note,
		createdAt:     createdAt,
	}
}

func (h *HistoryEntry) ID() uint                 { return h.id }
func (h *HistoryEntry) ReservationID() uint      { return h.reservationID }
func (h *HistoryEntry) Action() vo.HistoryAction { return h.action }
func (h *HistoryEntry) ActorID() uint            { return h.actorID }
func (h *HistoryEntry) Details() map[string]any  { return h.details }
func (h *HistoryEntry) Note() string             { return h.note }
func (h *HistoryEntry) CreatedAt() time.Time     { return h.createdAt }
func (h *HistoryEntry) SetID(id uint)            { h.id = id }
