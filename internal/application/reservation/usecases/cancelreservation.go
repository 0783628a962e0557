package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/spacebook/spacebook/internal/application/reservation/dto"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	"github.com/spacebook/spacebook/internal/shared/biztime"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// CancelReservationUseCase lets an owner withdraw a pending request. The
// reservation ends up rejected with the fixed cancellation reason.
type CancelReservationUseCase struct {
	resRepo     reservation.Repository
	historyRepo reservation.HistoryRepository
	writer      *bookingWriter
	metrics     Metrics
	logger      logger.Interface
	now         func() time.Time
}

func NewCancelReservationUseCase(
	resRepo reservation.Repository,
	historyRepo reservation.HistoryRepository,
	locker SpaceLocker,
	tx TransactionRunner,
	metrics Metrics,
	logger logger.Interface,
) *CancelReservationUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &CancelReservationUseCase{
		resRepo:     resRepo,
		historyRepo: historyRepo,
		writer:      newBookingWriter(locker, tx, logger),
		metrics:     metrics,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *CancelReservationUseCase) Execute(ctx context.Context, actor authorization.Principal, id uint) (*dto.ReservationDTO, error) {
	r, _, err := applyTransition(ctx, uc.writer, uc.resRepo, uc.historyRepo, id, transitionStep{
		action:  vo.ActionCancelled,
		actorID: actor.UserID,
		apply: func(r *reservation.Reservation) (bool, map[string]any, error) {
			from := r.Status()
			if err := r.Cancel(actor.UserID, uc.now()); err != nil {
				return false, nil, err
			}
			return true, map[string]any{"from": from.String(), "to": r.Status().String()}, nil
		},
	})
	if err != nil {
		if errors.Is(err, reservation.ErrNotPending) {
			return nil, apperrors.NewValidationError(msgCancelNotPending)
		}
		return nil, translateError(uc.logger, "cancel", id, err)
	}

	uc.metrics.ObserveTransition(vo.ActionCancelled)
	uc.logger.Infow("reservation cancelled", "reservation_id", id, "actor_id", actor.UserID)

	return dto.ToReservationDTO(r), nil
}
