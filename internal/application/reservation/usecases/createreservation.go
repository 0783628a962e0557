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
	"github.com/spacebook/spacebook/internal/shared/biztime"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// CreateReservationCommand asks for a new booking owned by UserID.
type CreateReservationCommand struct {
	UserID    uint
	SpaceID   uint
	Start     time.Time
	End       time.Time
	Category  string
	Attendees int
	Documents []string
}

// CreateReservationUseCase admits a booking request and stores it as
// pending. The overlap check and the insert happen under the space lock in
// one transaction, so two overlapping requests are never both stored.
type CreateReservationUseCase struct {
	admission   *AdmissionEngine
	resRepo     reservation.Repository
	historyRepo reservation.HistoryRepository
	spaceRepo   space.Repository
	writer      *bookingWriter
	notifier    *lifecycleNotifier
	metrics     Metrics
	logger      logger.Interface
	now         func() time.Time
}

func NewCreateReservationUseCase(
	admission *AdmissionEngine,
	resRepo reservation.Repository,
	historyRepo reservation.HistoryRepository,
	spaceRepo space.Repository,
	users user.Directory,
	locker SpaceLocker,
	tx TransactionRunner,
	sink notification.Sink,
	metrics Metrics,
	logger logger.Interface,
) *CreateReservationUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &CreateReservationUseCase{
		admission:   admission,
		resRepo:     resRepo,
		historyRepo: historyRepo,
		spaceRepo:   spaceRepo,
		writer:      newBookingWriter(locker, tx, logger),
		notifier:    newLifecycleNotifier(sink, users, spaceRepo, logger),
		metrics:     metrics,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

// WithClock replaces the clock used for the lead time check.
func (uc *CreateReservationUseCase) WithClock(now func() time.Time) *CreateReservationUseCase {
	uc.now = now
	return uc
}

func (uc *CreateReservationUseCase) Execute(ctx context.Context, cmd CreateReservationCommand) (*dto.ReservationDTO, error) {
	uc.logger.Infow("executing create reservation use case",
		"user_id", cmd.UserID,
		"space_id", cmd.SpaceID,
		"start", cmd.Start,
		"end", cmd.End)

	admitted, err := uc.admission.Admit(ctx, AdmissionInput{
		UserID:    cmd.UserID,
		SpaceID:   cmd.SpaceID,
		Start:     cmd.Start,
		End:       cmd.End,
		Category:  cmd.Category,
		Attendees: cmd.Attendees,
	}, uc.now())
	if err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = uc.writer.Locked(ctx, cmd.SpaceID, func(txCtx context.Context) error {
		if err := uc.spaceRepo.LockForBooking(txCtx, cmd.SpaceID); err != nil {
			return err
		}
		if err := uc.admission.CheckConflicts(txCtx, cmd.SpaceID, admitted.Period); err != nil {
			return err
		}

		r, err := reservation.NewReservation(cmd.UserID, cmd.SpaceID, admitted.Period,
			admitted.Category, admitted.Attendees, cmd.Documents)
		if err != nil {
			return err
		}
		if err := uc.resRepo.Create(txCtx, r); err != nil {
			return err
		}
		details := periodDetails(admitted.Period)
		details["space_id"] = cmd.SpaceID
		if err := appendHistory(txCtx, uc.historyRepo, r, vo.ActionCreated, cmd.UserID, details, ""); err != nil {
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, translateError(uc.logger, "create", 0, err)
	}

	uc.admission.Accepted()
	uc.metrics.ObserveTransition(vo.ActionCreated)
	uc.logger.Infow("reservation created",
		"reservation_id", created.ID(),
		"user_id", created.UserID(),
		"space_id", created.SpaceID())

	uc.notifier.Created(ctx, created, admitted.Space.Name())

	return dto.ToReservationDTO(created), nil
}
