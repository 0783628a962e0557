package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/space/dto"
)

type CreateSpaceExecutor interface {
	Execute(ctx context.Context, cmd CreateSpaceCommand) (*dto.SpaceDTO, error)
}

type GetSpaceExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.SpaceDTO, error)
}

type UpdateSpaceExecutor interface {
	Execute(ctx context.Context, cmd UpdateSpaceCommand) (*dto.SpaceDTO, error)
}

type DeactivateSpaceExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.SpaceDTO, error)
}

type ListSpacesExecutor interface {
	Execute(ctx context.Context, includeInactive bool) ([]*dto.SpaceDTO, error)
}
