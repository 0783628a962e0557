package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
)

// transitionStep describes one status or flag change. apply mutates the
// locked reservation and reports whether anything changed; when it did not,
// nothing is written.
type transitionStep struct {
	action  vo.HistoryAction
	actorID uint
	note    string
	apply   func(r *reservation.Reservation) (changed bool, details map[string]any, err error)
}

// applyTransition loads the reservation with a row lock, applies the step
// and writes the reservation and its history entry in one transaction.
func applyTransition(
	ctx context.Context,
	writer *bookingWriter,
	resRepo reservation.Repository,
	historyRepo reservation.HistoryRepository,
	id uint,
	step transitionStep,
) (*reservation.Reservation, bool, error) {
	var (
		result  *reservation.Reservation
		changed bool
	)
	err := writer.InTx(ctx, func(txCtx context.Context) error {
		r, err := resRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		ok, details, err := step.apply(r)
		if err != nil {
			return err
		}
		result, changed = r, ok
		if !ok {
			return nil
		}
		if err := resRepo.Update(txCtx, r); err != nil {
			return err
		}
		return appendHistory(txCtx, historyRepo, r, step.action, step.actorID, details, step.note)
	})
	if err != nil {
		return nil, false, err
	}
	return result, changed, nil
}
