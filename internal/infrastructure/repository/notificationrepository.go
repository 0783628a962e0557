package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/spacebook/spacebook/internal/domain/notification"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/mappers"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/models"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
	logger logger.Interface
}

func NewNotificationRepository(gormDB *gorm.DB, log logger.Interface) *NotificationRepository {
	return &NotificationRepository{
		db:     gormDB,
		mapper: mappers.NewNotificationMapper(),
		logger: log,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create notification", "user_id", n.UserID(), "type", n.Type(), "error", err)
		return fmt.Errorf("failed to create notification: %w", err)
	}
	n.SetID(model.ID)
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("id = ?", n.ID()).
		Updates(map[string]any{"leida": n.IsRead(), "fecha_leida": n.ReadAt()}).Error
	if err != nil {
		r.logger.Errorw("failed to update notification", "notification_id", n.ID(), "error", err)
		return fmt.Errorf("failed to update notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint, unreadOnly bool) ([]*notification.Notification, error) {
	q := r.db.WithContext(ctx).Where("usuario_id = ?", userID)
	if unreadOnly {
		q = q.Where("leida = ?", false)
	}

	var list []*models.NotificationModel
	if err := q.Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list notifications", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]*notification.Notification, 0, len(list))
	for _, model := range list {
		n, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
