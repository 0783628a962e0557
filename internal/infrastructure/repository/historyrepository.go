package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/spacebook/spacebook/internal/domain/reservation"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/mappers"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/models"
	"github.com/spacebook/spacebook/internal/shared/db"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// HistoryRepository implements reservation.HistoryRepository. Append joins
// the caller's transaction so an entry commits with its transition.
type HistoryRepository struct {
	db     *gorm.DB
	mapper mappers.ReservationMapper
	logger logger.Interface
}

func NewHistoryRepository(gormDB *gorm.DB, log logger.Interface) *HistoryRepository {
	return &HistoryRepository{
		db:     gormDB,
		mapper: mappers.NewReservationMapper(),
		logger: log,
	}
}

func (r *HistoryRepository) Append(ctx context.Context, entry *reservation.HistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append history entry",
			"reservation_id", entry.ReservationID(),
			"action", entry.Action(),
			"error", err,
		)
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	entry.SetID(model.ID)
	return nil
}

func (r *HistoryRepository) ListByReservation(ctx context.Context, reservationID uint) ([]*reservation.HistoryEntry, error) {
	var list []*models.ReservationHistoryModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("reserva_id = ?", reservationID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list history", "reservation_id", reservationID, "error", err)
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	out := make([]*reservation.HistoryEntry, 0, len(list))
	for _, model := range list {
		entry, err := r.mapper.HistoryToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}
