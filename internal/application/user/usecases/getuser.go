package usecases

import (
	"context"
	stderrors "errors"

	"github.com/spacebook/spacebook/internal/application/user/dto"
	domainUser "github.com/spacebook/spacebook/internal/domain/user"
	"github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

type GetUserUseCase struct {
	users  domainUser.Directory
	logger logger.Interface
}

func NewGetUserUseCase(users domainUser.Directory, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{users: users, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, domainUser.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "user_id", id, "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}
	return dto.ToUserResponse(u), nil
}
