package usecases

import (
	"context"
	"strings"
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

// TextSanitizer strips markup from free text before it is stored.
type TextSanitizer interface {
	PlainText(s string) string
}

// RejectReservationUseCase rejects a pending reservation with a reason.
// Staff only. A blank reason fails before the reservation is loaded.
type RejectReservationUseCase struct {
	resRepo     reservation.Repository
	historyRepo reservation.HistoryRepository
	writer      *bookingWriter
	notifier    *lifecycleNotifier
	sanitizer   TextSanitizer
	metrics     Metrics
	logger      logger.Interface
	now         func() time.Time
}

func NewRejectReservationUseCase(
	resRepo reservation.Repository,
	historyRepo reservation.HistoryRepository,
	spaceRepo space.Repository,
	users user.Directory,
	locker SpaceLocker,
	tx TransactionRunner,
	sink notification.Sink,
	sanitizer TextSanitizer,
	metrics Metrics,
	logger logger.Interface,
) *RejectReservationUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &RejectReservationUseCase{
		resRepo:     resRepo,
		historyRepo: historyRepo,
		writer:      newBookingWriter(locker, tx, logger),
		notifier:    newLifecycleNotifier(sink, users, spaceRepo, logger),
		sanitizer:   sanitizer,
		metrics:     metrics,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *RejectReservationUseCase) Execute(ctx context.Context, actor authorization.Principal, id uint, reason string) (*dto.ReservationDTO, error) {
	if !actor.IsStaff() {
		return nil, apperrors.NewForbiddenError(msgStaffOnly)
	}
	if uc.sanitizer != nil {
		reason = uc.sanitizer.PlainText(reason)
	}
	if strings.TrimSpace(reason) == "" {
		return nil, apperrors.NewValidationError(reservation.ErrRejectionReasonRequired.Error())
	}

	r, _, err := applyTransition(ctx, uc.writer, uc.resRepo, uc.historyRepo, id, transitionStep{
		action:  vo.ActionRejected,
		actorID: actor.UserID,
		note:    reason,
		apply: func(r *reservation.Reservation) (bool, map[string]any, error) {
			from := r.Status()
			if err := r.Reject(actor.UserID, reason, uc.now()); err != nil {
				return false, nil, err
			}
			return true, map[string]any{"from": from.String(), "to": r.Status().String(), "reason": reason}, nil
		},
	})
	if err != nil {
		return nil, translateError(uc.logger, "reject", id, err)
	}

	uc.metrics.ObserveTransition(vo.ActionRejected)
	uc.logger.Infow("reservation rejected", "reservation_id", id, "actor_id", actor.UserID)
	uc.notifier.Rejected(ctx, r)

	return dto.ToReservationDTO(r), nil
}
