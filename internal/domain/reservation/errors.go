package reservation

import "errors"

var (
	ErrReservationNotFound     = errors.New("reservation not found")
	ErrNotPending              = errors.New("reservation is not pending")
	ErrNotOwner                = errors.New("only the owner may cancel this reservation")
	ErrRejectionReasonRequired = errors.New("a rejection reason is required")
	ErrInvalidAttendees        = errors.New("attendees must be a positive integer")
	ErrNotEditable             = errors.New("only active, non-rejected reservations can be modified")
)
