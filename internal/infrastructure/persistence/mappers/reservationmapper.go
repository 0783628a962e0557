package mappers

import (
	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/models"
)

// ReservationMapper converts reservations and their history entries.
type ReservationMapper interface {
	ToModel(r *reservation.Reservation) *models.ReservationModel
	ToDomain(model *models.ReservationModel) (*reservation.Reservation, error)
	ToDomainList(list []*models.ReservationModel) ([]*reservation.Reservation, error)
	HistoryToModel(h *reservation.HistoryEntry) *models.ReservationHistoryModel
	HistoryToDomain(model *models.ReservationHistoryModel) (*reservation.HistoryEntry, error)
}

type ReservationMapperImpl struct{}

func NewReservationMapper() ReservationMapper {
	return &ReservationMapperImpl{}
}

func (m *ReservationMapperImpl) ToModel(r *reservation.Reservation) *models.ReservationModel {
	return &models.ReservationModel{
		ID:              r.ID(),
		UserID:          r.UserID(),
		SpaceID:         r.SpaceID(),
		StartTime:       r.Start().UTC(),
		EndTime:         r.End().UTC(),
		EventCategory:   eventCategoryVocab.stored(r.Category().String()),
		Attendees:       r.Attendees(),
		Status:          reservationStatusVocab.stored(r.Status().String()),
		RejectionReason: r.RejectionReason(),
		Documents:       r.Documents(),
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

func (m *ReservationMapperImpl) ToDomain(model *models.ReservationModel) (*reservation.Reservation, error) {
	if model == nil {
		return nil, nil
	}

	status, err := reservationStatusVocab.domain(model.Status)
	if err != nil {
		return nil, err
	}
	category, err := eventCategoryVocab.domain(model.EventCategory)
	if err != nil {
		return nil, err
	}
	period, err := vo.NewTimeRange(model.StartTime, model.EndTime)
	if err != nil {
		return nil, err
	}

	documents := []string(model.Documents)
	if documents == nil {
		documents = []string{}
	}

	return reservation.ReconstructReservation(
		model.ID,
		model.UserID,
		model.SpaceID,
		period,
		vo.EventCategory(category),
		model.Attendees,
		vo.ReservationStatus(status),
		model.RejectionReason,
		documents,
		model.ApprovedBy,
		model.RejectedBy,
		model.CancelledBy,
		utcPtr(model.ApprovedAt),
		utcPtr(model.RejectedAt),
		utcPtr(model.CancelledAt),
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ReservationMapperImpl) ToDomainList(list []*models.ReservationModel) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(list))
	for _, model := range list {
		r, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *ReservationMapperImpl) HistoryToModel(h *reservation.HistoryEntry) *models.ReservationHistoryModel {
	return &models.ReservationHistoryModel{
		ID:            h.ID(),
		ReservationID: h.ReservationID(),
		Action:        historyActionVocab.stored(h.Action().String()),
		UserID:        h.ActorID(),
		Details:       h.Details(),
		Note:          h.Note(),
		CreatedAt:     h.CreatedAt(),
	}
}

func (m *ReservationMapperImpl) HistoryToDomain(model *models.ReservationHistoryModel) (*reservation.HistoryEntry, error) {
	action, err := historyActionVocab.domain(model.Action)
	if err != nil {
		return nil, err
	}
	details := map[string]any(model.Details)
	if details == nil {
		details = map[string]any{}
	}
	return reservation.ReconstructHistoryEntry(
		model.ID,
		model.ReservationID,
		vo.HistoryAction(action),
		model.UserID,
		details,
		model.Note,
		model.CreatedAt,
	), nil
}
