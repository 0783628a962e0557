package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/user/dto"
	domainUser "github.com/spacebook/spacebook/internal/domain/user"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	"github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
	"github.com/spacebook/spacebook/internal/shared/utils"
)

// CreateUserUseCase handles the business logic for creating a user
type CreateUserUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo domainUser.Repository, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute validates the request and stores the user. An empty role
// defaults to user; a taken email is a conflict.
func (uc *CreateUserUseCase) Execute(ctx context.Context, request dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	role := authorization.RoleUser
	if request.Role != "" {
		role = authorization.UserRole(request.Role)
	}

	u, err := domainUser.NewUser(request.FirstName, request.LastName, request.Email, role, request.UserType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			uc.logger.Warnw("user with email already exists", "email", u.Email())
			return nil, errors.NewConflictError("user with this email already exists", u.Email())
		}
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", role)
	return dto.ToUserResponse(u), nil
}
