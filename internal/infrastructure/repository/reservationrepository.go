package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/mappers"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/models"
	"github.com/spacebook/spacebook/internal/shared/db"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// ReservationRepository implements reservation.Repository
type ReservationRepository struct {
	db     *gorm.DB
	mapper mappers.ReservationMapper
	logger logger.Interface
}

func NewReservationRepository(gormDB *gorm.DB, log logger.Interface) *ReservationRepository {
	return &ReservationRepository{
		db:     gormDB,
		mapper: mappers.NewReservationMapper(),
		logger: log,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	model := r.mapper.ToModel(res)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create reservation",
			"user_id", res.UserID(),
			"space_id", res.SpaceID(),
			"error", err,
		)
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	res.SetID(model.ID)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id uint) (*reservation.Reservation, error) {
	return r.get(ctx, db.GetTxFromContext(ctx, r.db), id)
}

func (r *ReservationRepository) GetByIDForUpdate(ctx context.Context, id uint) (*reservation.Reservation, error) {
	return r.get(ctx, db.GetTxFromContext(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *ReservationRepository) get(_ context.Context, q *gorm.DB, id uint) (*reservation.Reservation, error) {
	var model models.ReservationModel
	if err := q.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reservation.ErrReservationNotFound
		}
		r.logger.Errorw("failed to get reservation", "reservation_id", id, "error", err)
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	model := r.mapper.ToModel(res)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.ReservationModel{}).
		Where("id = ?", res.ID()).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update reservation", "reservation_id", res.ID(), "error", result.Error)
		return fmt.Errorf("failed to update reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return reservation.ErrReservationNotFound
	}
	return nil
}

// FindConflicting uses the half-open overlap test
// existing.start < candidate.end AND existing.end > candidate.start.
func (r *ReservationRepository) FindConflicting(
	ctx context.Context,
	spaceID uint,
	period vo.TimeRange,
	excludeStatuses []vo.ReservationStatus,
	excludeIDs ...uint,
) ([]*reservation.Reservation, error) {
	q := db.GetTxFromContext(ctx, r.db).
		Scopes(db.Active()).
		Where("espacio_id = ?", spaceID).
		Where("fecha_inicio < ? AND fecha_fin > ?", period.End().UTC(), period.Start().UTC())

	if len(excludeStatuses) > 0 {
		q = q.Where("estado NOT IN ?", storedStatuses(excludeStatuses))
	}
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}

	return r.find(q.Order("fecha_inicio ASC"), "find conflicting reservations")
}

func (r *ReservationRepository) FindByUser(ctx context.Context, userID uint) ([]*reservation.Reservation, error) {
	q := db.GetTxFromContext(ctx, r.db).
		Scopes(db.Active()).
		Where("usuario_id = ?", userID).
		Order("fecha_inicio DESC")
	return r.find(q, "find reservations by user")
}

func (r *ReservationRepository) FindByFilters(ctx context.Context, filter reservation.Filter) ([]*reservation.Reservation, error) {
	q := db.GetTxFromContext(ctx, r.db).Scopes(db.Active())
	if filter.SpaceID != nil {
		q = q.Where("espacio_id = ?", *filter.SpaceID)
	}
	if filter.UserID != nil {
		q = q.Where("usuario_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		q = q.Where("estado = ?", mappers.StoredReservationStatus(filter.Status.String()))
	}
	return r.find(q.Order("fecha_inicio ASC, id ASC"), "filter reservations")
}

func (r *ReservationRepository) FindAvailabilityWindow(ctx context.Context, spaceID uint, window vo.TimeRange) ([]*reservation.Reservation, error) {
	q := db.GetTxFromContext(ctx, r.db).
		Scopes(db.Active()).
		Where("espacio_id = ?", spaceID).
		Where("estado = ?", mappers.StoredReservationStatus(vo.StatusApproved.String())).
		Where("fecha_inicio < ? AND fecha_fin > ?", window.End().UTC(), window.Start().UTC()).
		Order("fecha_inicio ASC")
	return r.find(q, "find availability window")
}

func (r *ReservationRepository) FindUpcomingApproved(ctx context.Context, from, to time.Time) ([]*reservation.Reservation, error) {
	q := db.GetTxFromContext(ctx, r.db).
		Scopes(db.Active()).
		Where("estado = ?", mappers.StoredReservationStatus(vo.StatusApproved.String())).
		Where("fecha_inicio >= ? AND fecha_inicio < ?", from.UTC(), to.UTC()).
		Order("fecha_inicio ASC")
	return r.find(q, "find upcoming reservations")
}

func (r *ReservationRepository) find(q *gorm.DB, op string) ([]*reservation.Reservation, error) {
	var list []*models.ReservationModel
	if err := q.Find(&list).Error; err != nil {
		r.logger.Errorw("failed to "+op, "error", err)
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return r.mapper.ToDomainList(list)
}

func storedStatuses(statuses []vo.ReservationStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, mappers.StoredReservationStatus(s.String()))
	}
	return out
}
