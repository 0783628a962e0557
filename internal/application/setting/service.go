// Package setting manages the runtime configuration table read by the
// admission rules and the reminder worker.
package setting

import (
	"context"
	"io"

	"github.com/spacebook/spacebook/internal/application/setting/dto"
	"github.com/spacebook/spacebook/internal/application/setting/usecases"
	"github.com/spacebook/spacebook/internal/domain/setting"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

type ServiceDDD struct {
	logger   logger.Interface
	provider *usecases.SettingProvider

	list   *usecases.ListSettingsUseCase
	upsert *usecases.UpsertSettingUseCase
	seed   *usecases.SeedSettingsUseCase
}

// NewServiceDDD wires the use cases around one cached provider; writes
// through the service invalidate the provider's cache.
func NewServiceDDD(settingRepo setting.Repository, logger logger.Interface) *ServiceDDD {
	provider := usecases.NewSettingProvider(settingRepo, logger)
	return &ServiceDDD{
		logger:   logger,
		provider: provider,

		list:   usecases.NewListSettingsUseCase(settingRepo, logger),
		upsert: usecases.NewUpsertSettingUseCase(settingRepo, provider, logger),
		seed:   usecases.NewSeedSettingsUseCase(settingRepo, provider, logger),
	}
}

// Provider returns the typed reader shared with the reservation engine.
func (s *ServiceDDD) Provider() setting.Provider {
	return s.provider
}

func (s *ServiceDDD) ListSettings(ctx context.Context) ([]*dto.SettingResponse, error) {
	return s.list.Execute(ctx)
}

func (s *ServiceDDD) UpsertSetting(ctx context.Context, key string, req dto.UpsertSettingRequest) (*dto.SettingResponse, error) {
	return s.upsert.Execute(ctx, key, req)
}

func (s *ServiceDDD) SeedSettings(ctx context.Context, r io.Reader, overwrite bool) (*usecases.SeedResult, error) {
	return s.seed.Execute(ctx, r, overwrite)
}
