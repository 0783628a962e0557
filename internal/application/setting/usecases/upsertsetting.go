package usecases

import (
	"context"
	"errors"

	"github.com/spacebook/spacebook/internal/application/setting/dto"
	"github.com/spacebook/spacebook/internal/domain/setting"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// UpsertSettingUseCase creates or replaces a configuration entry.
type UpsertSettingUseCase struct {
	settingRepo setting.Repository
	notifier    SettingChangeNotifier
	logger      logger.Interface
}

func NewUpsertSettingUseCase(
	settingRepo setting.Repository,
	notifier SettingChangeNotifier,
	logger logger.Interface,
) *UpsertSettingUseCase {
	return &UpsertSettingUseCase{
		settingRepo: settingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *UpsertSettingUseCase) Execute(ctx context.Context, key string, req dto.UpsertSettingRequest) (*dto.SettingResponse, error) {
	current, err := uc.settingRepo.GetByKey(ctx, key)
	if err != nil && !errors.Is(err, setting.ErrSettingNotFound) {
		uc.logger.Errorw("failed to load setting", "key", key, "error", err)
		return nil, apperrors.NewInternalError("failed to update setting")
	}

	valueType := setting.ValueType(req.ValueType)
	description := ""
	if current != nil {
		if valueType == "" {
			valueType = current.ValueType()
		}
		description = current.Description()
	}
	if valueType == "" {
		valueType = setting.ValueTypeText
	}
	if req.Description != nil {
		description = *req.Description
	}

	s, err := setting.NewSetting(key, req.Value, valueType, description)
	if err != nil {
		return nil, toValidationError(err)
	}

	if err := uc.settingRepo.Upsert(ctx, s); err != nil {
		uc.logger.Errorw("failed to upsert setting", "key", key, "error", err)
		return nil, apperrors.NewInternalError("failed to update setting")
	}
	if uc.notifier != nil {
		uc.notifier.Invalidate(key)
	}

	uc.logger.Infow("setting updated", "key", key, "value_type", valueType)

	saved, err := uc.settingRepo.GetByKey(ctx, key)
	if err != nil {
		return dto.ToSettingResponse(s), nil
	}
	return dto.ToSettingResponse(saved), nil
}

func toValidationError(err error) error {
	switch {
	case errors.Is(err, setting.ErrInvalidSettingKey),
		errors.Is(err, setting.ErrInvalidValueType),
		errors.Is(err, setting.ErrInvalidValue):
		return apperrors.NewValidationError(err.Error())
	}
	return apperrors.NewInternalError("failed to update setting")
}
