package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/spacebook/spacebook/internal/domain/space"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/mappers"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/models"
	"github.com/spacebook/spacebook/internal/shared/db"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// SpaceRepository implements space.Repository
type SpaceRepository struct {
	db     *gorm.DB
	mapper mappers.SpaceMapper
	logger logger.Interface
}

func NewSpaceRepository(gormDB *gorm.DB, log logger.Interface) *SpaceRepository {
	return &SpaceRepository{
		db:     gormDB,
		mapper: mappers.NewSpaceMapper(),
		logger: log,
	}
}

func (r *SpaceRepository) Create(ctx context.Context, s *space.Space) error {
	model := r.mapper.ToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create space", "name", s.Name(), "error", err)
		return fmt.Errorf("failed to create space: %w", err)
	}
	s.SetID(model.ID)
	return nil
}

func (r *SpaceRepository) GetByID(ctx context.Context, id uint) (*space.Space, error) {
	var model models.SpaceModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, space.ErrSpaceNotFound
		}
		r.logger.Errorw("failed to get space", "space_id", id, "error", err)
		return nil, fmt.Errorf("failed to get space: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *SpaceRepository) Update(ctx context.Context, s *space.Space) error {
	model := r.mapper.ToModel(s)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.SpaceModel{}).
		Where("id = ?", s.ID()).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update space", "space_id", s.ID(), "error", result.Error)
		return fmt.Errorf("failed to update space: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return space.ErrSpaceNotFound
	}
	return nil
}

func (r *SpaceRepository) ListActive(ctx context.Context) ([]*space.Space, error) {
	var list []*models.SpaceModel
	err := db.GetTxFromContext(ctx, r.db).Scopes(db.Active()).Order("nombre ASC").Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list active spaces", "error", err)
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

func (r *SpaceRepository) ListAll(ctx context.Context) ([]*space.Space, error) {
	var list []*models.SpaceModel
	err := db.GetTxFromContext(ctx, r.db).Order("nombre ASC").Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list spaces", "error", err)
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

// LockForBooking issues SELECT ... FOR UPDATE on the space row. It must run
// inside a transaction; SQLite ignores the locking clause and relies on its
// database-level write lock instead.
func (r *SpaceRepository) LockForBooking(ctx context.Context, id uint) error {
	var model models.SpaceModel
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return space.ErrSpaceNotFound
		}
		return fmt.Errorf("failed to lock space %d: %w", id, err)
	}
	return nil
}
