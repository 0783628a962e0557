package mappers

import (
	"github.com/spacebook/spacebook/internal/domain/user"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/models"
	"github.com/spacebook/spacebook/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email(),
		Role:      roleVocab.stored(u.Role().String()),
		UserType:  u.UserType(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role, err := roleVocab.domain(model.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		model.ID,
		model.FirstName,
		model.LastName,
		model.Email,
		authorization.UserRole(role),
		model.UserType,
		model.IsActive,
		model.CreatedAt,
	), nil
}
