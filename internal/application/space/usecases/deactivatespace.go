package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/space/dto"
	"github.com/spacebook/spacebook/internal/domain/space"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// DeactivateSpaceUseCase soft-deletes a space. Deactivating an inactive
// space succeeds without writing.
type DeactivateSpaceUseCase struct {
	spaceRepo space.Repository
	logger    logger.Interface
}

func NewDeactivateSpaceUseCase(spaceRepo space.Repository, logger logger.Interface) *DeactivateSpaceUseCase {
	return &DeactivateSpaceUseCase{
		spaceRepo: spaceRepo,
		logger:    logger,
	}
}

func (uc *DeactivateSpaceUseCase) Execute(ctx context.Context, id uint) (*dto.SpaceDTO, error) {
	s, err := uc.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(uc.logger, "deactivate", id, err)
	}

	if s.Deactivate() {
		if err := uc.spaceRepo.Update(ctx, s); err != nil {
			return nil, translateRepoError(uc.logger, "deactivate", id, err)
		}
		uc.logger.Infow("space deactivated", "space_id", id)
	}
	return dto.ToSpaceDTO(s), nil
}
