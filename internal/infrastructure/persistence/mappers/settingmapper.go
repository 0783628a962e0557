package mappers

import (
	"github.com/spacebook/spacebook/internal/domain/setting"
	"github.com/spacebook/spacebook/internal/infrastructure/persistence/models"
)

type SettingMapper interface {
	ToModel(s *setting.Setting) *models.SettingModel
	ToDomain(model *models.SettingModel) (*setting.Setting, error)
}

type SettingMapperImpl struct{}

func NewSettingMapper() SettingMapper {
	return &SettingMapperImpl{}
}

func (m *SettingMapperImpl) ToModel(s *setting.Setting) *models.SettingModel {
	return &models.SettingModel{
		ID:          s.ID(),
		Key:         s.Key(),
		Value:       s.Value(),
		Description: s.Description(),
		ValueType:   settingTypeVocab.stored(string(s.ValueType())),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func (m *SettingMapperImpl) ToDomain(model *models.SettingModel) (*setting.Setting, error) {
	vt, err := settingTypeVocab.domain(model.ValueType)
	if err != nil {
		return nil, err
	}
	return setting.ReconstructSetting(
		model.ID,
		model.Key,
		model.Value,
		setting.ValueType(vt),
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
