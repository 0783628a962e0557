package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/spacebook/spacebook/internal/domain/setting"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

// SeedEntry is one item of the settings seed file.
type SeedEntry struct {
	Key         string `yaml:"key"`
	Value       string `yaml:"value"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

type seedFile struct {
	Settings []SeedEntry `yaml:"settings"`
}

// SeedResult counts what a seed run did.
type SeedResult struct {
	Created int
	Updated int
	Skipped int
}

// SeedSettingsUseCase loads configs/settings.yaml into the configuraciones
// table. Existing keys are left alone unless overwrite is set.
type SeedSettingsUseCase struct {
	settingRepo setting.Repository
	notifier    SettingChangeNotifier
	logger      logger.Interface
}

func NewSeedSettingsUseCase(settingRepo setting.Repository, notifier SettingChangeNotifier, logger logger.Interface) *SeedSettingsUseCase {
	return &SeedSettingsUseCase{
		settingRepo: settingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// ParseSeed decodes a seed document and validates every entry up front, so
// a bad file writes nothing.
func ParseSeed(r io.Reader) ([]*setting.Setting, error) {
	var doc seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode settings seed: %w", err)
	}

	seen := make(map[string]bool, len(doc.Settings))
	out := make([]*setting.Setting, 0, len(doc.Settings))
	for i, e := range doc.Settings {
		if seen[e.Key] {
			return nil, fmt.Errorf("settings seed entry %d: duplicate key %q", i, e.Key)
		}
		seen[e.Key] = true

		valueType := setting.ValueType(e.Type)
		if valueType == "" {
			valueType = setting.ValueTypeText
		}
		s, err := setting.NewSetting(e.Key, e.Value, valueType, e.Description)
		if err != nil {
			return nil, fmt.Errorf("settings seed entry %d (%s): %w", i, e.Key, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (uc *SeedSettingsUseCase) Execute(ctx context.Context, r io.Reader, overwrite bool) (*SeedResult, error) {
	entries, err := ParseSeed(r)
	if err != nil {
		return nil, err
	}

	result := &SeedResult{}
	changed := make([]string, 0, len(entries))
	for _, s := range entries {
		_, err := uc.settingRepo.GetByKey(ctx, s.Key())
		exists := err == nil
		if err != nil && !errors.Is(err, setting.ErrSettingNotFound) {
			return result, fmt.Errorf("failed to check setting %s: %w", s.Key(), err)
		}
		if exists && !overwrite {
			result.Skipped++
			continue
		}

		if err := uc.settingRepo.Upsert(ctx, s); err != nil {
			return result, fmt.Errorf("failed to seed setting %s: %w", s.Key(), err)
		}
		if exists {
			result.Updated++
		} else {
			result.Created++
		}
		changed = append(changed, s.Key())
	}

	if uc.notifier != nil && len(changed) > 0 {
		uc.notifier.Invalidate(changed...)
	}

	uc.logger.Infow("settings seeded",
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped)
	return result, nil
}
