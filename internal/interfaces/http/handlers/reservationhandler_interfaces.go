package handlers

import (
	"context"
	"time"

	"github.com/spacebook/spacebook/internal/application/reservation/dto"
	"github.com/spacebook/spacebook/internal/application/reservation/usecases"
	"github.com/spacebook/spacebook/internal/shared/authorization"
)

// reservationService is the subset of reservation.ServiceDDD used by
// ReservationHandler.
type reservationService interface {
	CreateReservation(ctx context.Context, cmd usecases.CreateReservationCommand) (*dto.ReservationDTO, error)
	ApproveReservation(ctx context.Context, actor authorization.Principal, id uint, note string) (*dto.ReservationDTO, error)
	RejectReservation(ctx context.Context, actor authorization.Principal, id uint, reason string) (*dto.ReservationDTO, error)
	CancelReservation(ctx context.Context, actor authorization.Principal, id uint) (*dto.ReservationDTO, error)
	DeactivateReservation(ctx context.Context, actor authorization.Principal, id uint, note string) (*dto.ReservationDTO, error)
	ReactivateReservation(ctx context.Context, actor authorization.Principal, id uint, note string) (*dto.ReservationDTO, error)
	UpdateReservation(ctx context.Context, actor authorization.Principal, id uint, cmd usecases.UpdateReservationCommand) (*dto.ReservationDTO, error)
	GetReservation(ctx context.Context, actor authorization.Principal, id uint) (*dto.ReservationDTO, error)
	GetHistory(ctx context.Context, actor authorization.Principal, id uint) ([]*dto.HistoryEntryDTO, error)
	ListReservations(ctx context.Context, actor authorization.Principal, query usecases.ListReservationsQuery) ([]*dto.ReservationDTO, error)
	ListMyReservations(ctx context.Context, actor authorization.Principal) ([]*dto.ReservationDTO, error)
	GetAvailability(ctx context.Context, spaceID uint, from, to time.Time) (*dto.AvailabilityDTO, error)
}
