package usecases

import (
	"context"
	"time"

	"github.com/spacebook/spacebook/internal/application/reservation/dto"
	"github.com/spacebook/spacebook/internal/domain/notification"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	"github.com/spacebook/spacebook/internal/domain/space"
	"github.com/spacebook/spacebook/internal/domain/user"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	"github.com/spacebook/spacebook/internal/shared/biztime"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// ApproveReservationUseCase approves a pending reservation. Staff only.
type ApproveReservationUseCase struct {
	resRepo     reservation.Repository
	historyRepo reservation.HistoryRepository
	writer      *bookingWriter
	notifier    *lifecycleNotifier
	metrics     Metrics
	logger      logger.Interface
	now         func() time.Time
}

func NewApproveReservationUseCase(
	resRepo reservation.Repository,
	historyRepo reservation.HistoryRepository,
	spaceRepo space.Repository,
	users user.Directory,
	locker SpaceLocker,
	tx TransactionRunner,
	sink notification.Sink,
	metrics Metrics,
	logger logger.Interface,
) *ApproveReservationUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &ApproveReservationUseCase{
		resRepo:     resRepo,
		historyRepo: historyRepo,
		writer:      newBookingWriter(locker, tx, logger),
		notifier:    newLifecycleNotifier(sink, users, spaceRepo, logger),
		metrics:     metrics,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *ApproveReservationUseCase) Execute(ctx context.Context, actor authorization.Principal, id uint, note string) (*dto.ReservationDTO, error) {
	if !actor.IsStaff() {
		return nil, apperrors.NewForbiddenError(msgStaffOnly)
	}

	r, _, err := applyTransition(ctx, uc.writer, uc.resRepo, uc.historyRepo, id, transitionStep{
		action:  vo.ActionApproved,
		actorID: actor.UserID,
		note:    note,
		apply: func(r *reservation.Reservation) (bool, map[string]any, error) {
			from := r.Status()
			if err := r.Approve(actor.UserID, uc.now()); err != nil {
				return false, nil, err
			}
			return true, map[string]any{"from": from.String(), "to": r.Status().String()}, nil
		},
	})
	if err != nil {
		return nil, translateError(uc.logger, "approve", id, err)
	}

	uc.metrics.ObserveTransition(vo.ActionApproved)
	uc.logger.Infow("reservation approved", "reservation_id", id, "actor_id", actor.UserID)
	uc.notifier.Approved(ctx, r)

	return dto.ToReservationDTO(r), nil
}
