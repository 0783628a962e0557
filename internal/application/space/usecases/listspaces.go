package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/space/dto"
	"github.com/spacebook/spacebook/internal/domain/space"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

type ListSpacesUseCase struct {
	spaceRepo space.Repository
	logger    logger.Interface
}

func NewListSpacesUseCase(spaceRepo space.Repository, logger logger.Interface) *ListSpacesUseCase {
	return &ListSpacesUseCase{
		spaceRepo: spaceRepo,
		logger:    logger,
	}
}

// Execute lists active spaces; staff may ask for inactive ones too.
func (uc *ListSpacesUseCase) Execute(ctx context.Context, includeInactive bool) ([]*dto.SpaceDTO, error) {
	var (
		list []*space.Space
		err  error
	)
	if includeInactive {
		list, err = uc.spaceRepo.ListAll(ctx)
	} else {
		list, err = uc.spaceRepo.ListActive(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list spaces", "include_inactive", includeInactive, "error", err)
		return nil, apperrors.NewInternalError("failed to list spaces")
	}
	return dto.ToSpaceDTOs(list), nil
}
