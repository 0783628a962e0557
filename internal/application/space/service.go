// Package space manages the catalogue of bookable spaces.
package space

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/space/dto"
	"github.com/spacebook/spacebook/internal/application/space/usecases"
	"github.com/spacebook/spacebook/internal/domain/space"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

type ServiceDDD struct {
	logger logger.Interface

	create     usecases.CreateSpaceExecutor
	update     usecases.UpdateSpaceExecutor
	deactivate usecases.DeactivateSpaceExecutor
	get        usecases.GetSpaceExecutor
	list       usecases.ListSpacesExecutor
}

func NewServiceDDD(spaceRepo space.Repository, logger logger.Interface) *ServiceDDD {
	return &ServiceDDD{
		logger: logger,

		create:     usecases.NewCreateSpaceUseCase(spaceRepo, logger),
		update:     usecases.NewUpdateSpaceUseCase(spaceRepo, logger),
		deactivate: usecases.NewDeactivateSpaceUseCase(spaceRepo, logger),
		get:        usecases.NewGetSpaceUseCase(spaceRepo, logger),
		list:       usecases.NewListSpacesUseCase(spaceRepo, logger),
	}
}

func (s *ServiceDDD) CreateSpace(ctx context.Context, cmd usecases.CreateSpaceCommand) (*dto.SpaceDTO, error) {
	return s.create.Execute(ctx, cmd)
}

func (s *ServiceDDD) UpdateSpace(ctx context.Context, cmd usecases.UpdateSpaceCommand) (*dto.SpaceDTO, error) {
	return s.update.Execute(ctx, cmd)
}

func (s *ServiceDDD) DeactivateSpace(ctx context.Context, id uint) (*dto.SpaceDTO, error) {
	return s.deactivate.Execute(ctx, id)
}

func (s *ServiceDDD) GetSpace(ctx context.Context, id uint) (*dto.SpaceDTO, error) {
	return s.get.Execute(ctx, id)
}

func (s *ServiceDDD) ListSpaces(ctx context.Context, includeInactive bool) ([]*dto.SpaceDTO, error) {
	return s.list.Execute(ctx, includeInactive)
}
