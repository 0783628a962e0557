package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/space/dto"
	"github.com/spacebook/spacebook/internal/domain/space"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

type GetSpaceUseCase struct {
	spaceRepo space.Repository
	logger    logger.Interface
}

func NewGetSpaceUseCase(spaceRepo space.Repository, logger logger.Interface) *GetSpaceUseCase {
	return &GetSpaceUseCase{
		spaceRepo: spaceRepo,
		logger:    logger,
	}
}

func (uc *GetSpaceUseCase) Execute(ctx context.Context, id uint) (*dto.SpaceDTO, error) {
	s, err := uc.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(uc.logger, "get", id, err)
	}
	return dto.ToSpaceDTO(s), nil
}
