package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/spacebook/spacebook/internal/application/reservation/dto"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
	"github.com/spacebook/spacebook/internal/domain/space"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// maxAvailabilityWindow bounds one availability query.
const maxAvailabilityWindow = 62 * 24 * time.Hour

// GetAvailabilityUseCase lists the approved bookings of a space inside a
// window, earliest first. Pending requests are not shown.
type GetAvailabilityUseCase struct {
	resRepo   reservation.Repository
	spaceRepo space.Repository
	logger    logger.Interface
}

func NewGetAvailabilityUseCase(resRepo reservation.Repository, spaceRepo space.Repository, logger logger.Interface) *GetAvailabilityUseCase {
	return &GetAvailabilityUseCase{resRepo: resRepo, spaceRepo: spaceRepo, logger: logger}
}

func (uc *GetAvailabilityUseCase) Execute(ctx context.Context, spaceID uint, from, to time.Time) (*dto.AvailabilityDTO, error) {
	window, err := vo.NewTimeRange(from, to)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if window.Duration() > maxAvailabilityWindow {
		return nil, apperrors.NewValidationError("availability window cannot exceed 62 days")
	}

	if _, err := uc.spaceRepo.GetByID(ctx, spaceID); err != nil {
		if errors.Is(err, space.ErrSpaceNotFound) {
			return nil, apperrors.NewNotFoundError("space not found")
		}
		uc.logger.Errorw("failed to load space", "space_id", spaceID, "error", err)
		return nil, apperrors.NewInternalError("failed to load availability")
	}

	list, err := uc.resRepo.FindAvailabilityWindow(ctx, spaceID, window)
	if err != nil {
		uc.logger.Errorw("failed to load availability", "space_id", spaceID, "error", err)
		return nil, apperrors.NewInternalError("failed to load availability")
	}

	busy := make([]dto.BusySlotDTO, 0, len(list))
	for _, r := range list {
		busy = append(busy, dto.BusySlotDTO{
			ReservationID: r.ID(),
			Start:         r.Start(),
			End:           r.End(),
			EventCategory: r.Category().String(),
		})
	}
	return &dto.AvailabilityDTO{
		SpaceID: spaceID,
		From:    window.Start(),
		To:      window.End(),
		Busy:    busy,
	}, nil
}
