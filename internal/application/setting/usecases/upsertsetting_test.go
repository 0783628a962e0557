package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacebook/spacebook/internal/application/setting/dto"
	"github.com/spacebook/spacebook/internal/domain/setting"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

func TestUpsertSettingUseCase_KeepsExistingType(t *testing.T) {
	repo := newMemorySettingRepository(
		mustSetting(setting.KeyMinLeadDays, "2", setting.ValueTypeNumber),
	)
	notifier := &recordingNotifier{}
	uc := NewUpsertSettingUseCase(repo, notifier, logger.NewNop())

	resp, err := uc.Execute(context.Background(), setting.KeyMinLeadDays, dto.UpsertSettingRequest{Value: "4"})
	require.NoError(t, err)
	assert.Equal(t, "4", resp.Value)
	assert.Equal(t, "number", resp.ValueType)
	assert.Equal(t, []string{setting.KeyMinLeadDays}, notifier.keys)
}

func TestUpsertSettingUseCase_RejectsBadValue(t *testing.T) {
	repo := newMemorySettingRepository(
		mustSetting(setting.KeyMinLeadDays, "2", setting.ValueTypeNumber),
	)
	notifier := &recordingNotifier{}
	uc := NewUpsertSettingUseCase(repo, notifier, logger.NewNop())

	_, err := uc.Execute(context.Background(), setting.KeyMinLeadDays, dto.UpsertSettingRequest{Value: "two"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Empty(t, notifier.keys)

	current, err := repo.GetByKey(context.Background(), setting.KeyMinLeadDays)
	require.NoError(t, err)
	assert.Equal(t, "2", current.Value())
}

func TestUpsertSettingUseCase_RejectsFractionalDayCount(t *testing.T) {
	repo := newMemorySettingRepository(
		mustSetting(setting.KeyMinLeadDays, "2", setting.ValueTypeNumber),
	)
	uc := NewUpsertSettingUseCase(repo, &recordingNotifier{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), setting.KeyMinLeadDays, dto.UpsertSettingRequest{Value: "1.5"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))

	current, err := repo.GetByKey(context.Background(), setting.KeyMinLeadDays)
	require.NoError(t, err)
	assert.Equal(t, "2", current.Value())
}

func TestUpsertSettingUseCase_NewKeyDefaultsToText(t *testing.T) {
	repo := newMemorySettingRepository()
	uc := NewUpsertSettingUseCase(repo, nil, logger.NewNop())

	desc := "shown on the booking form"
	resp, err := uc.Execute(context.Background(), "mensaje_bienvenida", dto.UpsertSettingRequest{Value: "Hola", Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "text", resp.ValueType)
	assert.Equal(t, desc, resp.Description)
}

func TestSeedSettingsUseCase(t *testing.T) {
	const doc = `
settings:
  - key: dias_anticipacion_minima
    value: "2"
    type: number
    description: minimum notice
  - key: horario_apertura_default
    value: "07:00"
    type: time
  - key: prioridad_eventos_academicos
    value: "true"
    type: boolean
`
	existing := mustSetting(setting.KeyMinLeadDays, "5", setting.ValueTypeNumber)
	repo := newMemorySettingRepository(existing)
	notifier := &recordingNotifier{}
	uc := NewSeedSettingsUseCase(repo, notifier, logger.NewNop())

	result, err := uc.Execute(context.Background(), strings.NewReader(doc), false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Skipped)

	kept, err := repo.GetByKey(context.Background(), setting.KeyMinLeadDays)
	require.NoError(t, err)
	assert.Equal(t, "5", kept.Value())
	assert.ElementsMatch(t, []string{setting.KeyDefaultOpening, setting.KeyAcademicEventsFirst}, notifier.keys)

	result, err = uc.Execute(context.Background(), strings.NewReader(doc), true)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Updated)

	replaced, err := repo.GetByKey(context.Background(), setting.KeyMinLeadDays)
	require.NoError(t, err)
	assert.Equal(t, "2", replaced.Value())
}

func TestParseSeed_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "settings:\n  - key: a\n    value: b\n    colour: red\n"},
		{"bad number", "settings:\n  - key: a\n    value: lots\n    type: number\n"},
		{"bad type", "settings:\n  - key: a\n    value: b\n    type: colour\n"},
		{"duplicate key", "settings:\n  - key: a\n    value: b\n  - key: a\n    value: c\n"},
		{"empty key", "settings:\n  - key: ''\n    value: b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}
