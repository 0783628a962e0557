package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/spacebook/spacebook/internal/domain/setting"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/mappers"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/models"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// SettingRepository implements setting.Repository over configuraciones.
type SettingRepository struct {
	db     *gorm.DB
	mapper mappers.SettingMapper
	logger logger.Interface
}

func NewSettingRepository(gormDB *gorm.DB, log logger.Interface) *SettingRepository {
	return &SettingRepository{
		db:     gormDB,
		mapper: mappers.NewSettingMapper(),
		logger: log,
	}
}

func (r *SettingRepository) GetByKey(ctx context.Context, key string) (*setting.Setting, error) {
	var model models.SettingModel
	err := r.db.WithContext(ctx).Where("clave = ?", key).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingNotFound
		}
		r.logger.Errorw("failed to get setting by key", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting by key: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *SettingRepository) GetAll(ctx context.Context) ([]*setting.Setting, error) {
	var list []*models.SettingModel
	if err := r.db.WithContext(ctx).Order("clave ASC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to get all settings", "error", err)
		return nil, fmt.Errorf("failed to get all settings: %w", err)
	}

	out := make([]*setting.Setting, 0, len(list))
	for _, model := range list {
		s, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, s *setting.Setting) error {
	model := r.mapper.ToModel(s)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "clave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor", "tipo", "descripcion", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert setting", "key", s.Key(), "error", err)
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	if s.ID() == 0 {
		s.SetID(model.ID)
	}
	return nil
}
