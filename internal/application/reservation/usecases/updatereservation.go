package usecases

import (
	"context"
	"slices"
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

// UpdateReservationCommand edits a reservation. Nil fields keep their value.
type UpdateReservationCommand struct {
	Start     *time.Time
	End       *time.Time
	Category  *string
	Attendees *int
	Documents *[]string
	Note      string
}

func (c UpdateReservationCommand) isEmpty() bool {
	return c.Start == nil && c.End == nil && c.Category == nil && c.Attendees == nil && c.Documents == nil
}

// UpdateReservationUseCase lets staff edit the period, category, attendees
// and documents of a reservation that still holds its slot. The merged
// values go through the same admission checks as a new request; lead time
// is only checked when the start moves.
type UpdateReservationUseCase struct {
	admission   *AdmissionEngine
	resRepo     reservation.Repository
	historyRepo reservation.HistoryRepository
	spaceRepo   space.Repository
	writer      *bookingWriter
	sanitizer   TextSanitizer
	metrics     Metrics
	logger      logger.Interface
	now         func() time.Time
}

func NewUpdateReservationUseCase(
	admission *AdmissionEngine,
	resRepo reservation.Repository,
	historyRepo reservation.HistoryRepository,
	spaceRepo space.Repository,
	locker SpaceLocker,
	tx TransactionRunner,
	sanitizer TextSanitizer,
	metrics Metrics,
	logger logger.Interface,
) *UpdateReservationUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UpdateReservationUseCase{
		admission:   admission,
		resRepo:     resRepo,
		historyRepo: historyRepo,
		spaceRepo:   spaceRepo,
		writer:      newBookingWriter(locker, tx, logger),
		sanitizer:   sanitizer,
		metrics:     metrics,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

// WithClock replaces the clock used for the lead time check.
func (uc *UpdateReservationUseCase) WithClock(now func() time.Time) *UpdateReservationUseCase {
	uc.now = now
	return uc
}

func (uc *UpdateReservationUseCase) Execute(ctx context.Context, actor authorization.Principal, id uint, cmd UpdateReservationCommand) (*dto.ReservationDTO, error) {
	if !actor.IsStaff() {
		return nil, apperrors.NewForbiddenError(msgStaffOnly)
	}

	current, err := uc.resRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(uc.logger, "update", id, err)
	}
	if !current.IsActive() || current.Status() == vo.StatusRejected {
		return nil, apperrors.NewValidationError(reservation.ErrNotEditable.Error())
	}
	if cmd.isEmpty() {
		return dto.ToReservationDTO(current), nil
	}

	in := AdmissionInput{
		UserID:    current.UserID(),
		SpaceID:   current.SpaceID(),
		Start:     current.Start(),
		End:       current.End(),
		Category:  current.Category().String(),
		Attendees: current.Attendees(),
	}
	if cmd.Start != nil {
		in.Start = *cmd.Start
	}
	if cmd.End != nil {
		in.End = *cmd.End
	}
	if cmd.Category != nil {
		in.Category = *cmd.Category
	}
	if cmd.Attendees != nil {
		in.Attendees = *cmd.Attendees
	}

	now := uc.now()
	admitted, err := uc.admission.AdmitWithOptions(ctx, in, now, AdmitOptions{
		SkipLeadTime: in.Start.Equal(current.Start()),
	})
	if err != nil {
		return nil, err
	}

	note := cmd.Note
	if uc.sanitizer != nil {
		note = uc.sanitizer.PlainText(note)
	}

	var (
		result  *reservation.Reservation
		changes map[string]any
	)
	err = uc.writer.Locked(ctx, current.SpaceID(), func(txCtx context.Context) error {
		if err := uc.spaceRepo.LockForBooking(txCtx, current.SpaceID()); err != nil {
			return err
		}
		r, err := uc.resRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if !r.Period().Equal(admitted.Period) {
			if err := uc.admission.CheckConflicts(txCtx, r.SpaceID(), admitted.Period, r.ID()); err != nil {
				return err
			}
		}
		diff, err := applyEdits(r, admitted, cmd.Documents, now)
		if err != nil {
			return err
		}
		result, changes = r, diff
		if len(diff) == 0 {
			return nil
		}
		if err := uc.resRepo.Update(txCtx, r); err != nil {
			return err
		}
		return appendHistory(txCtx, uc.historyRepo, r, vo.ActionModified, actor.UserID, diff, note)
	})
	if err != nil {
		return nil, translateError(uc.logger, "update", id, err)
	}

	if len(changes) > 0 {
		uc.metrics.ObserveTransition(vo.ActionModified)
		uc.logger.Infow("reservation modified",
			"reservation_id", id,
			"actor_id", actor.UserID,
			"fields", len(changes))
	}
	return dto.ToReservationDTO(result), nil
}

// applyEdits writes the admitted values onto r and returns a before/after
// map of the fields that actually changed.
func applyEdits(r *reservation.Reservation, admitted *Admitted, documents *[]string, at time.Time) (map[string]any, error) {
	diff := map[string]any{}

	if !r.Period().Equal(admitted.Period) {
		before := periodDetails(r.Period())
		if err := r.Reschedule(admitted.Period, at); err != nil {
			return nil, err
		}
		diff["period"] = map[string]any{"before": before, "after": periodDetails(r.Period())}
	}
	if r.Category() != admitted.Category {
		before := r.Category().String()
		if err := r.ChangeCategory(admitted.Category, at); err != nil {
			return nil, err
		}
		diff["event_category"] = map[string]any{"before": before, "after": r.Category().String()}
	}
	if r.Attendees() != admitted.Attendees {
		before := r.Attendees()
		if err := r.ChangeAttendees(admitted.Attendees, at); err != nil {
			return nil, err
		}
		diff["attendees"] = map[string]any{"before": before, "after": r.Attendees()}
	}
	if documents != nil {
		before := slices.Clone(r.Documents())
		if err := r.ReplaceDocuments(*documents, at); err != nil {
			return nil, err
		}
		if !slices.Equal(before, r.Documents()) {
			diff["documents"] = map[string]any{"before": before, "after": r.Documents()}
		}
	}
	return diff, nil
}
