// Package reservation exposes the booking lifecycle to the transport layer.
package reservation

import (
	"context"
	"time"

	"github.com/spacebook/spacebook/internal/application/reservation/dto"
	"github.com/spacebook/spacebook/internal/application/reservation/usecases"
	"github.com/spacebook/spacebook/internal/domain/notification"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	"github.com/spacebook/spacebook/internal/domain/setting"
	"github.com/spacebook/spacebook/internal/domain/space"
	"github.com/spacebook/spacebook/internal/domain/user"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// Dependencies bundles the collaborators of the reservation use cases.
type Dependencies struct {
	Reservations reservation.Repository
	History      reservation.HistoryRepository
	Spaces       space.Repository
	Users        user.Directory
	Settings     setting.Provider
	Locker       usecases.SpaceLocker
	Tx           usecases.TransactionRunner
	Sink         notification.Sink
	Sanitizer    usecases.TextSanitizer
	Metrics      usecases.Metrics
	Location     *time.Location
}

type ServiceDDD struct {
	logger logger.Interface

	create       *usecases.CreateReservationUseCase
	approve      *usecases.ApproveReservationUseCase
	reject       *usecases.RejectReservationUseCase
	cancel       *usecases.CancelReservationUseCase
	deactivate   *usecases.DeactivateReservationUseCase
	reactivate   *usecases.ReactivateReservationUseCase
	update       *usecases.UpdateReservationUseCase
	get          *usecases.GetReservationUseCase
	history      *usecases.GetHistoryUseCase
	list         *usecases.ListReservationsUseCase
	listMine     *usecases.ListMyReservationsUseCase
	availability *usecases.GetAvailabilityUseCase
}

func NewServiceDDD(deps Dependencies, logger logger.Interface) *ServiceDDD {
	admission := usecases.NewAdmissionEngine(deps.Users, deps.Spaces, deps.Reservations, deps.Settings, deps.Metrics, logger)
	if deps.Location != nil {
		admission.WithLocation(deps.Location)
	}

	return &ServiceDDD{
		logger: logger,

		create: usecases.NewCreateReservationUseCase(admission, deps.Reservations, deps.History, deps.Spaces,
			deps.Users, deps.Locker, deps.Tx, deps.Sink, deps.Metrics, logger),
		approve: usecases.NewApproveReservationUseCase(deps.Reservations, deps.History, deps.Spaces,
			deps.Users, deps.Locker, deps.Tx, deps.Sink, deps.Metrics, logger),
		reject: usecases.NewRejectReservationUseCase(deps.Reservations, deps.History, deps.Spaces,
			deps.Users, deps.Locker, deps.Tx, deps.Sink, deps.Sanitizer, deps.Metrics, logger),
		cancel:     usecases.NewCancelReservationUseCase(deps.Reservations, deps.History, deps.Locker, deps.Tx, deps.Metrics, logger),
		deactivate: usecases.NewDeactivateReservationUseCase(deps.Reservations, deps.History, deps.Locker, deps.Tx, deps.Metrics, logger),
		reactivate: usecases.NewReactivateReservationUseCase(admission, deps.Reservations, deps.History, deps.Spaces,
			deps.Locker, deps.Tx, deps.Metrics, logger),
		update: usecases.NewUpdateReservationUseCase(admission, deps.Reservations, deps.History, deps.Spaces,
			deps.Locker, deps.Tx, deps.Sanitizer, deps.Metrics, logger),
		get:          usecases.NewGetReservationUseCase(deps.Reservations, logger),
		history:      usecases.NewGetHistoryUseCase(deps.Reservations, deps.History, logger),
		list:         usecases.NewListReservationsUseCase(deps.Reservations, logger),
		listMine:     usecases.NewListMyReservationsUseCase(deps.Reservations, logger),
		availability: usecases.NewGetAvailabilityUseCase(deps.Reservations, deps.Spaces, logger),
	}
}

func (s *ServiceDDD) CreateReservation(ctx context.Context, cmd usecases.CreateReservationCommand) (*dto.ReservationDTO, error) {
	return s.create.Execute(ctx, cmd)
}

func (s *ServiceDDD) ApproveReservation(ctx context.Context, actor authorization.Principal, id uint, note string) (*dto.ReservationDTO, error) {
	return s.approve.Execute(ctx, actor, id, note)
}

func (s *ServiceDDD) RejectReservation(ctx context.Context, actor authorization.Principal, id uint, reason string) (*dto.ReservationDTO, error) {
	return s.reject.Execute(ctx, actor, id, reason)
}

func (s *ServiceDDD) CancelReservation(ctx context.Context, actor authorization.Principal, id uint) (*dto.ReservationDTO, error) {
	return s.cancel.Execute(ctx, actor, id)
}

func (s *ServiceDDD) DeactivateReservation(ctx context.Context, actor authorization.Principal, id uint, note string) (*dto.ReservationDTO, error) {
	return s.deactivate.Execute(ctx, actor, id, note)
}

func (s *ServiceDDD) ReactivateReservation(ctx context.Context, actor authorization.Principal, id uint, note string) (*dto.ReservationDTO, error) {
	return s.reactivate.Execute(ctx, actor, id, note)
}

func (s *ServiceDDD) UpdateReservation(ctx context.Context, actor authorization.Principal, id uint, cmd usecases.UpdateReservationCommand) (*dto.ReservationDTO, error) {
	return s.update.Execute(ctx, actor, id, cmd)
}

func (s *ServiceDDD) GetReservation(ctx context.Context, actor authorization.Principal, id uint) (*dto.ReservationDTO, error) {
	return s.get.Execute(ctx, actor, id)
}

func (s *ServiceDDD) GetHistory(ctx context.Context, actor authorization.Principal, id uint) ([]*dto.HistoryEntryDTO, error) {
	return s.history.Execute(ctx, actor, id)
}

func (s *ServiceDDD) ListReservations(ctx context.Context, actor authorization.Principal, query usecases.ListReservationsQuery) ([]*dto.ReservationDTO, error) {
	return s.list.Execute(ctx, actor, query)
}

func (s *ServiceDDD) ListMyReservations(ctx context.Context, actor authorization.Principal) ([]*dto.ReservationDTO, error) {
	return s.listMine.Execute(ctx, actor)
}

func (s *ServiceDDD) GetAvailability(ctx context.Context, spaceID uint, from, to time.Time) (*dto.AvailabilityDTO, error) {
	return s.availability.Execute(ctx, spaceID, from, to)
}
