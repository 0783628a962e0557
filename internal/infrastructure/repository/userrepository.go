package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/spacebook/spacebook/internal/domain/user"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/mappers"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/models"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	"github.com/spacebook/spacebook/internal/shared/db"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// UserRepository implements user.Repository over the usuarios table.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(gormDB *gorm.DB, log logger.Interface) *UserRepository {
	return &UserRepository{
		db:     gormDB,
		mapper: mappers.NewUserMapper(),
		logger: log,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "email", u.Email(), "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.SetID(model.ID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.logger.Errorw("failed to get user", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) FindActiveByRoles(ctx context.Context, roles ...authorization.UserRole) ([]*user.User, error) {
	if len(roles) == 0 {
		return []*user.User{}, nil
	}
	stored := make([]string, 0, len(roles))
	for _, role := range roles {
		stored = append(stored, mappers.StoredRole(role.String()))
	}

	var list []*models.UserModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.Active()).
		Where("role IN ?", stored).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to find users by role", "roles", roles, "error", err)
		return nil, fmt.Errorf("failed to find users by role: %w", err)
	}

	out := make([]*user.User, 0, len(list))
	for _, model := range list {
		u, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}
