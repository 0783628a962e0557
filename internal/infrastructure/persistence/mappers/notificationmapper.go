package mappers

import (
	"github.com/spacebook/spacebook/internal/domain/notification"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:            n.ID(),
		UserID:        n.UserID(),
		Type:          notificationTypeVocab.stored(string(n.Type())),
		Title:         n.Title(),
		Message:       n.Message(),
		ReservationID: n.ReservationID(),
		Read:          n.IsRead(),
		ReadAt:        n.ReadAt(),
		CreatedAt:     n.CreatedAt(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	kind, err := notificationTypeVocab.domain(model.Type)
	if err != nil {
		return nil, err
	}
	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		notification.Type(kind),
		model.Title,
		model.Message,
		model.ReservationID,
		model.Read,
		model.ReadAt,
		model.CreatedAt,
	), nil
}
