package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/space/dto"
	"github.com/spacebook/spacebook/internal/domain/space"
	spacevo "github.com/spacebook/spacebook/internal/domain/space/valueobjects"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

type CreateSpaceCommand struct {
	Name        string
	Location    string
	Capacity    int
	Equipment   []string
	Kind        string
	OpeningTime string
	ClosingTime string
}

type CreateSpaceUseCase struct {
	spaceRepo space.Repository
	logger    logger.Interface
}

func NewCreateSpaceUseCase(spaceRepo space.Repository, logger logger.Interface) *CreateSpaceUseCase {
	return &CreateSpaceUseCase{
		spaceRepo: spaceRepo,
		logger:    logger,
	}
}

func (uc *CreateSpaceUseCase) Execute(ctx context.Context, cmd CreateSpaceCommand) (*dto.SpaceDTO, error) {
	window, err := spacevo.ParseOperatingWindow(cmd.OpeningTime, cmd.ClosingTime)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	s, err := space.NewSpace(cmd.Name, cmd.Location, cmd.Capacity, cmd.Equipment, cmd.Kind, window)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.spaceRepo.Create(ctx, s); err != nil {
		uc.logger.Errorw("failed to create space", "name", cmd.Name, "error", err)
		return nil, apperrors.NewInternalError("failed to create space")
	}

	uc.logger.Infow("space created", "space_id", s.ID(), "name", s.Name())
	return dto.ToSpaceDTO(s), nil
}
