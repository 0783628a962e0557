package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/spacebook/spacebook/internal/domain/notification"
	"github.com/spacebook/spacebook/internal/shared/biztime"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

type MarkNotificationAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
	now    func() time.Time
}

func NewMarkNotificationAsReadUseCase(
	repo notification.Repository,
	logger logger.Interface,
) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{
		repo:   repo,
		logger: logger,
		now:    biztime.NowUTC,
	}
}

func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, id uint, userID uint) error {
	uc.logger.Infow("executing mark notification as read use case", "id", id, "user_id", userID)

	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("notification not found")
		}
		uc.logger.Errorw("failed to find notification", "id", id, "error", err)
		return apperrors.NewInternalError("failed to update notification")
	}

	if n.UserID() != userID {
		uc.logger.Warnw("unauthorized access to notification", "id", id, "user_id", userID, "owner_id", n.UserID())
		return apperrors.NewForbiddenError("you don't have permission to access this notification")
	}

	if n.IsRead() {
		return nil
	}
	n.MarkRead(uc.now())

	if err := uc.repo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to persist notification update", "id", id, "error", err)
		return apperrors.NewInternalError("failed to update notification")
	}

	uc.logger.Infow("notification marked as read", "id", id)
	return nil
}
