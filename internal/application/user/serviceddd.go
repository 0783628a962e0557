// Package user manages the local user directory used for booking
// ownership, notification targets and token issuance.
package user

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/user/dto"
	"github.com/spacebook/spacebook/internal/application/user/usecases"
	domainUser "github.com/spacebook/spacebook/internal/domain/user"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// ServiceDDD is the application service that orchestrates use cases
type ServiceDDD struct {
	createUserUC *usecases.CreateUserUseCase
	getUserUC    *usecases.GetUserUseCase
	logger       logger.Interface
}

func NewServiceDDD(userRepo domainUser.Repository, logger logger.Interface) *ServiceDDD {
	return &ServiceDDD{
		createUserUC: usecases.NewCreateUserUseCase(userRepo, logger),
		getUserUC:    usecases.NewGetUserUseCase(userRepo, logger),
		logger:       logger,
	}
}

func (s *ServiceDDD) CreateUser(ctx context.Context, request dto.CreateUserRequest) (*dto.UserResponse, error) {
	return s.createUserUC.Execute(ctx, request)
}

func (s *ServiceDDD) GetUser(ctx context.Context, id uint) (*dto.UserResponse, error) {
	return s.getUserUC.Execute(ctx, id)
}
