package usecases

import (
	"context"
	"time"

	"github.com/spacebook/spacebook/internal/application/reservation/dto"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	"github.com/spacebook/spacebook/internal/domain/space"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	"github.com/spacebook/spacebook/internal/shared/biztime"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// ReactivateReservationUseCase restores a soft-deleted reservation. A
// reservation that would block the calendar again is checked for overlaps
// under the space lock first.
type ReactivateReservationUseCase struct {
	admission   *AdmissionEngine
	resRepo     reservation.Repository
	historyRepo reservation.HistoryRepository
	spaceRepo   space.Repository
	writer      *bookingWriter
	metrics     Metrics
	logger      logger.Interface
	now         func() time.Time
}

func NewReactivateReservationUseCase(
	admission *AdmissionEngine,
	resRepo reservation.Repository,
	historyRepo reservation.HistoryRepository,
	spaceRepo space.Repository,
	locker SpaceLocker,
	tx TransactionRunner,
	metrics Metrics,
	logger logger.Interface,
) *ReactivateReservationUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &ReactivateReservationUseCase{
		admission:   admission,
		resRepo:     resRepo,
		historyRepo: historyRepo,
		spaceRepo:   spaceRepo,
		writer:      newBookingWriter(locker, tx, logger),
		metrics:     metrics,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *ReactivateReservationUseCase) Execute(ctx context.Context, actor authorization.Principal, id uint, note string) (*dto.ReservationDTO, error) {
	if !actor.IsStaff() {
		return nil, apperrors.NewForbiddenError(msgStaffOnly)
	}

	current, err := uc.resRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(uc.logger, "reactivate", id, err)
	}
	if current.IsActive() {
		return dto.ToReservationDTO(current), nil
	}

	var (
		result  *reservation.Reservation
		changed bool
	)
	err = uc.writer.Locked(ctx, current.SpaceID(), func(txCtx context.Context) error {
		if err := uc.spaceRepo.LockForBooking(txCtx, current.SpaceID()); err != nil {
			return err
		}
		r, err := uc.resRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if r.IsActive() {
			result = r
			return nil
		}
		if r.Status().BlocksCalendar() {
			if err := uc.admission.CheckConflicts(txCtx, r.SpaceID(), r.Period(), r.ID()); err != nil {
				return err
			}
		}
		r.Reactivate(uc.now())
		if err := uc.resRepo.Update(txCtx, r); err != nil {
			return err
		}
		if err := appendHistory(txCtx, uc.historyRepo, r, vo.ActionReactivated, actor.UserID, nil, note); err != nil {
			return err
		}
		result, changed = r, true
		return nil
	})
	if err != nil {
		return nil, translateError(uc.logger, "reactivate", id, err)
	}

	if changed {
		uc.metrics.ObserveTransition(vo.ActionReactivated)
		uc.logger.Infow("reservation reactivated", "reservation_id", id, "actor_id", actor.UserID)
	}
	return dto.ToReservationDTO(result), nil
}
