package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/reservation/dto"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// GetReservationUseCase returns one reservation to its owner or to staff.
type GetReservationUseCase struct {
	resRepo reservation.Repository
	logger  logger.Interface
}

func NewGetReservationUseCase(resRepo reservation.Repository, logger logger.Interface) *GetReservationUseCase {
	return &GetReservationUseCase{resRepo: resRepo, logger: logger}
}

func (uc *GetReservationUseCase) Execute(ctx context.Context, actor authorization.Principal, id uint) (*dto.ReservationDTO, error) {
	r, err := loadVisible(ctx, uc.resRepo, uc.logger, actor, id)
	if err != nil {
		return nil, err
	}
	return dto.ToReservationDTO(r), nil
}

func loadVisible(ctx context.Context, repo reservation.Repository, log logger.Interface, actor authorization.Principal, id uint) (*reservation.Reservation, error) {
	r, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateError(log, "get", id, err)
	}
	if !actor.IsStaff() && !r.IsOwnedBy(actor.UserID) {
		return nil, apperrors.NewForbiddenError(msgNotOwnerOrStaff)
	}
	return r, nil
}
