package usecases

import (
	"errors"

	"github.com/spacebook/spacebook/internal/domain/reservation"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

const (
	msgNotPending        = "reservation is not pending"
	msgCancelNotPending  = "only pending reservations can be cancelled"
	msgStaffOnly         = "only administrators and operators may perform this action"
	msgAdminOnly         = "only administrators may perform this action"
	msgNotOwnerOrStaff   = "you do not have access to this reservation"
	msgConcurrentWriters = "the space is being booked by another request, please retry"
)

// translateError maps domain and repository failures to application errors.
// AppErrors pass through unchanged.
func translateError(log logger.Interface, op string, id uint, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsAppError(err) {
		return err
	}
	switch {
	case errors.Is(err, reservation.ErrReservationNotFound):
		return apperrors.NewNotFoundError("reservation not found")
	case errors.Is(err, reservation.ErrNotOwner):
		return apperrors.NewForbiddenError(err.Error())
	case errors.Is(err, reservation.ErrNotPending):
		return apperrors.NewValidationError(msgNotPending)
	case errors.Is(err, reservation.ErrRejectionReasonRequired),
		errors.Is(err, reservation.ErrNotEditable),
		errors.Is(err, reservation.ErrInvalidAttendees):
		return apperrors.NewValidationError(err.Error())
	}
	log.Errorw("reservation operation failed", "operation", op, "reservation_id", id, "error", err)
	return apperrors.NewInternalError("failed to " + op + " reservation")
}
