package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/reservation/dto"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// ListReservationsQuery filters the staff listing. Zero values do not filter.
type ListReservationsQuery struct {
	SpaceID uint
	UserID  uint
	Status  string
}

// ListReservationsUseCase lists active reservations for staff.
type ListReservationsUseCase struct {
	resRepo reservation.Repository
	logger  logger.Interface
}

func NewListReservationsUseCase(resRepo reservation.Repository, logger logger.Interface) *ListReservationsUseCase {
	return &ListReservationsUseCase{resRepo: resRepo, logger: logger}
}

func (uc *ListReservationsUseCase) Execute(ctx context.Context, actor authorization.Principal, query ListReservationsQuery) ([]*dto.ReservationDTO, error) {
	if !actor.IsStaff() {
		return nil, apperrors.NewForbiddenError(msgStaffOnly)
	}

	var filter reservation.Filter
	if query.SpaceID != 0 {
		filter.SpaceID = &query.SpaceID
	}
	if query.UserID != 0 {
		filter.UserID = &query.UserID
	}
	if query.Status != "" {
		status, err := vo.ParseReservationStatus(query.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	list, err := uc.resRepo.FindByFilters(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list reservations", "error", err)
		return nil, apperrors.NewInternalError("failed to list reservations")
	}
	return dto.ToReservationDTOs(list), nil
}

// ListMyReservationsUseCase lists the caller's active reservations, latest
// start first.
type ListMyReservationsUseCase struct {
	resRepo reservation.Repository
	logger  logger.Interface
}

func NewListMyReservationsUseCase(resRepo reservation.Repository, logger logger.Interface) *ListMyReservationsUseCase {
	return &ListMyReservationsUseCase{resRepo: resRepo, logger: logger}
}

func (uc *ListMyReservationsUseCase) Execute(ctx context.Context, actor authorization.Principal) ([]*dto.ReservationDTO, error) {
	list, err := uc.resRepo.FindByUser(ctx, actor.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list user reservations", "user_id", actor.UserID, "error", err)
		return nil, apperrors.NewInternalError("failed to list reservations")
	}
	return dto.ToReservationDTOs(list), nil
}
