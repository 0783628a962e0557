package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/reservation/dto"
	"github.com/spacebook/spacebook/internal/domain/reservation"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// GetHistoryUseCase lists the audit trail of a reservation, oldest first.
type GetHistoryUseCase struct {
	resRepo     reservation.Repository
	historyRepo reservation.HistoryRepository
	logger      logger.Interface
}

func NewGetHistoryUseCase(resRepo reservation.Repository, historyRepo reservation.HistoryRepository, logger logger.Interface) *GetHistoryUseCase {
	return &GetHistoryUseCase{resRepo: resRepo, historyRepo: historyRepo, logger: logger}
}

func (uc *GetHistoryUseCase) Execute(ctx context.Context, actor authorization.Principal, id uint) ([]*dto.HistoryEntryDTO, error) {
	if _, err := loadVisible(ctx, uc.resRepo, uc.logger, actor, id); err != nil {
		return nil, err
	}
	entries, err := uc.historyRepo.ListByReservation(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to list reservation history", "reservation_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to list reservation history")
	}
	return dto.ToHistoryEntryDTOs(entries), nil
}
