package mappers

import (
	"fmt"

	"github.com/spacebook/spacebook/internal/domain/space"
	vo "github.com/spacebook/spacebook/internal/domain/space/valueobjects"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/models"
)

// SpaceMapper converts between Space entities and SpaceModel rows.
type SpaceMapper interface {
	ToModel(s *space.Space) *models.SpaceModel
	ToDomain(model *models.SpaceModel) (*space.Space, error)
	ToDomainList(list []*models.SpaceModel) ([]*space.Space, error)
}

type SpaceMapperImpl struct{}

func NewSpaceMapper() SpaceMapper {
	return &SpaceMapperImpl{}
}

func (m *SpaceMapperImpl) ToModel(s *space.Space) *models.SpaceModel {
	model := &models.SpaceModel{
		ID:        s.ID(),
		Name:      s.Name(),
		Location:  s.Location(),
		Capacity:  s.Capacity(),
		Equipment: s.Equipment(),
		Status:    spaceStatusVocab.stored(s.Status().String()),
		Kind:      s.Kind(),
		IsActive:  s.IsActive(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
	if open := s.Window().Opening(); open != nil {
		v := open.String()
		model.OpeningTime = &v
	}
	if closing := s.Window().Closing(); closing != nil {
		v := closing.String()
		model.ClosingTime = &v
	}
	return model
}

func (m *SpaceMapperImpl) ToDomain(model *models.SpaceModel) (*space.Space, error) {
	if model == nil {
		return nil, nil
	}

	status, err := spaceStatusVocab.domain(model.Status)
	if err != nil {
		return nil, err
	}

	var opening, closing string
	if model.OpeningTime != nil {
		opening = *model.OpeningTime
	}
	if model.ClosingTime != nil {
		closing = *model.ClosingTime
	}
	window, err := vo.ParseOperatingWindow(opening, closing)
	if err != nil {
		return nil, fmt.Errorf("space %d: %w", model.ID, err)
	}

	equipment := []string(model.Equipment)
	if equipment == nil {
		equipment = []string{}
	}

	return space.ReconstructSpace(
		model.ID,
		model.Name,
		model.Location,
		model.Capacity,
		equipment,
		model.Kind,
		window,
		vo.SpaceStatus(status),
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SpaceMapperImpl) ToDomainList(list []*models.SpaceModel) ([]*space.Space, error) {
	out := make([]*space.Space, 0, len(list))
	for _, model := range list {
		s, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
