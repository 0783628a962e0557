// Package notification exposes the in-app notification inbox.
package notification

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/notification/dto"
	"github.com/spacebook/spacebook/internal/application/notification/usecases"
	"github.com/spacebook/spacebook/internal/domain/notification"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

type ServiceDDD struct {
	logger logger.Interface

	listNotifications      *usecases.ListNotificationsUseCase
	markNotificationAsRead *usecases.MarkNotificationAsReadUseCase
}

func NewServiceDDD(
	notificationRepo notification.Repository,
	markdownService dto.MarkdownService,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		logger: logger,

		listNotifications:      usecases.NewListNotificationsUseCase(notificationRepo, markdownService, logger),
		markNotificationAsRead: usecases.NewMarkNotificationAsReadUseCase(notificationRepo, logger),
	}
}

func (s *ServiceDDD) ListNotifications(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListResponse, error) {
	return s.listNotifications.Execute(ctx, req)
}

func (s *ServiceDDD) MarkNotificationAsRead(ctx context.Context, id, userID uint) error {
	return s.markNotificationAsRead.Execute(ctx, id, userID)
}
