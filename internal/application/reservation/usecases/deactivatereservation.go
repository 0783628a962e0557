package usecases

import (
	"context"
	"time"

	"github.com/spacebook/spacebook/internal/application/reservation/dto"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	"github.com/spacebook/spacebook/internal/shared/biztime"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// DeactivateReservationUseCase soft-deletes a reservation. Deactivating an
// inactive reservation succeeds and records nothing.
type DeactivateReservationUseCase struct {
	resRepo     reservation.Repository
	historyRepo reservation.HistoryRepository
	writer      *bookingWriter
	metrics     Metrics
	logger      logger.Interface
	now         func() time.Time
}

func NewDeactivateReservationUseCase(
	resRepo reservation.Repository,
	historyRepo reservation.HistoryRepository,
	locker SpaceLocker,
	tx TransactionRunner,
	metrics Metrics,
	logger logger.Interface,
) *DeactivateReservationUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &DeactivateReservationUseCase{
		resRepo:     resRepo,
		historyRepo: historyRepo,
		writer:      newBookingWriter(locker, tx, logger),
		metrics:     metrics,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *DeactivateReservationUseCase) Execute(ctx context.Context, actor authorization.Principal, id uint, note string) (*dto.ReservationDTO, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.NewForbiddenError(msgAdminOnly)
	}

	r, changed, err := applyTransition(ctx, uc.writer, uc.resRepo, uc.historyRepo, id, transitionStep{
		action:  vo.ActionDeactivated,
		actorID: actor.UserID,
		note:    note,
		apply: func(r *reservation.Reservation) (bool, map[string]any, error) {
			return r.Deactivate(uc.now()), nil, nil
		},
	})
	if err != nil {
		return nil, translateError(uc.logger, "deactivate", id, err)
	}

	if changed {
		uc.metrics.ObserveTransition(vo.ActionDeactivated)
		uc.logger.Infow("reservation deactivated", "reservation_id", id, "actor_id", actor.UserID)
	}
	return dto.ToReservationDTO(r), nil
}
