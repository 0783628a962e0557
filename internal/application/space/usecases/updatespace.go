package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/application/space/dto"
	"github.com/spacebook/spacebook/internal/domain/shared/clock"
	"github.com/spacebook/spacebook/internal/domain/space"
	spacevo "github.com/spacebook/spacebook/internal/domain/space/valueobjects"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// UpdateSpaceCommand carries a partial update. Nil fields are unchanged.
type UpdateSpaceCommand struct {
	ID          uint
	Name        *string
	Location    *string
	Capacity    *int
	Equipment   *[]string
	Kind        *string
	OpeningTime *string
	ClosingTime *string
	Status      *string
}

type UpdateSpaceUseCase struct {
	spaceRepo space.Repository
	logger    logger.Interface
}

func NewUpdateSpaceUseCase(spaceRepo space.Repository, logger logger.Interface) *UpdateSpaceUseCase {
	return &UpdateSpaceUseCase{
		spaceRepo: spaceRepo,
		logger:    logger,
	}
}

func (uc *UpdateSpaceUseCase) Execute(ctx context.Context, cmd UpdateSpaceCommand) (*dto.SpaceDTO, error) {
	s, err := uc.spaceRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, translateRepoError(uc.logger, "update", cmd.ID, err)
	}

	if err := applyPatch(s, cmd); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.spaceRepo.Update(ctx, s); err != nil {
		return nil, translateRepoError(uc.logger, "update", cmd.ID, err)
	}

	uc.logger.Infow("space updated", "space_id", s.ID())
	return dto.ToSpaceDTO(s), nil
}

// applyPatch validates with the same rules as creation. The window is
// rebuilt from the merged bounds so opening < closing is checked once.
func applyPatch(s *space.Space, cmd UpdateSpaceCommand) error {
	if cmd.Name != nil {
		if err := s.Rename(*cmd.Name); err != nil {
			return err
		}
	}
	if cmd.Location != nil {
		if err := s.Relocate(*cmd.Location); err != nil {
			return err
		}
	}
	if cmd.Capacity != nil {
		if err := s.SetCapacity(*cmd.Capacity); err != nil {
			return err
		}
	}
	if cmd.Equipment != nil {
		s.SetEquipment(*cmd.Equipment)
	}
	if cmd.Kind != nil {
		s.SetKind(*cmd.Kind)
	}
	if cmd.OpeningTime != nil || cmd.ClosingTime != nil {
		opening := boundString(s.Window().Opening())
		closing := boundString(s.Window().Closing())
		if cmd.OpeningTime != nil {
			opening = *cmd.OpeningTime
		}
		if cmd.ClosingTime != nil {
			closing = *cmd.ClosingTime
		}
		window, err := spacevo.ParseOperatingWindow(opening, closing)
		if err != nil {
			return err
		}
		s.SetWindow(window)
	}
	if cmd.Status != nil {
		status, err := spacevo.ParseSpaceStatus(*cmd.Status)
		if err != nil {
			return err
		}
		if err := s.SetStatus(status); err != nil {
			return err
		}
	}
	return nil
}

func boundString(b *clock.Time) string {
	if b == nil {
		return ""
	}
	return b.String()
}
