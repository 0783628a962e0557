package usecases

import (
	"context"
	"errors"

	"github.com/spacebook/spacebook/internal/application/setting/dto"
	"github.com/spacebook/spacebook/internal/domain/setting"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

type ListSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewListSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *ListSettingsUseCase {
	return &ListSettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *ListSettingsUseCase) Execute(ctx context.Context) ([]*dto.SettingResponse, error) {
	list, err := uc.settingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list settings", "error", err)
		return nil, apperrors.NewInternalError("failed to list settings")
	}
	return dto.ToSettingResponses(list), nil
}

func (uc *ListSettingsUseCase) Get(ctx context.Context, key string) (*dto.SettingResponse, error) {
	s, err := uc.settingRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return nil, apperrors.NewNotFoundError("setting not found", key)
		}
		uc.logger.Errorw("failed to get setting", "key", key, "error", err)
		return nil, apperrors.NewInternalError("failed to get setting")
	}
	return dto.ToSettingResponse(s), nil
}
