package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/notification/dto"
	"github.com/spacebook/spacebook/internal/domain/notification"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

type ListNotificationsUseCase struct {
	repo            notification.Repository
	markdownService dto.MarkdownService
	logger          logger.Interface
}

func NewListNotificationsUseCase(
	repo notification.Repository,
	markdownService dto.MarkdownService,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:            repo,
		markdownService: markdownService,
		logger:          logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListResponse, error) {
	uc.logger.Debugw("executing list notifications use case", "user_id", req.UserID, "unread_only", req.UnreadOnly)

	list, err := uc.repo.ListByUser(ctx, req.UserID, req.UnreadOnly)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", req.UserID, "error", err)
		return nil, apperrors.NewInternalError("failed to list notifications")
	}

	unread := 0
	for _, n := range list {
		if !n.IsRead() {
			unread++
		}
	}
	return &dto.ListResponse{
		Items:  dto.ToNotificationResponseList(list, uc.markdownService),
		Total:  len(list),
		Unread: unread,
	}, nil
}
