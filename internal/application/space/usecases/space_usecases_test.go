package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacebook/spacebook/internal/domain/space"
	spacevo "github.com/spacebook/spacebook/internal/domain/space/valueobjects"
	apperrors "github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
)

func newStoredSpace(t *testing.T, id uint) *space.Space {
	t.Helper()
	window, err := spacevo.ParseOperatingWindow("08:00", "22:00")
	require.NoError(t, err)
	s, err := space.NewSpace("Auditorio Central", "Bloque A", 200, []string{"projector"}, "auditorium", window)
	require.NoError(t, err)
	s.SetID(id)
	return s
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateSpaceUseCase(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateSpaceCommand
		wantErr string
	}{
		{
			name: "valid",
			cmd:  CreateSpaceCommand{Name: "Sala 101", Location: "Bloque B", Capacity: 30, OpeningTime: "07:00", ClosingTime: "21:00"},
		},
		{
			name:    "zero capacity",
			cmd:     CreateSpaceCommand{Name: "Sala 101", Location: "Bloque B", Capacity: 0},
			wantErr: "capacity must be a positive integer",
		},
		{
			name:    "negative capacity",
			cmd:     CreateSpaceCommand{Name: "Sala 101", Location: "Bloque B", Capacity: -4},
			wantErr: "capacity must be a positive integer",
		},
		{
			name:    "missing name",
			cmd:     CreateSpaceCommand{Location: "Bloque B", Capacity: 10},
			wantErr: "space name is required",
		},
		{
			name:    "opening after closing",
			cmd:     CreateSpaceCommand{Name: "Sala 101", Location: "Bloque B", Capacity: 10, OpeningTime: "22:00", ClosingTime: "08:00"},
			wantErr: "must be before closing time",
		},
		{
			name:    "malformed clock",
			cmd:     CreateSpaceCommand{Name: "Sala 101", Location: "Bloque B", Capacity: 10, OpeningTime: "8am"},
			wantErr: "8am",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateSpaceUseCase(&mockSpaceRepository{}, logger.NewNop())
			got, err := uc.Execute(context.Background(), tt.cmd)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(1), got.ID)
			assert.Equal(t, "available", got.Status)
			assert.True(t, got.IsActive)
			require.NotNil(t, got.OpeningTime)
			assert.Equal(t, "07:00:00", *got.OpeningTime)
		})
	}
}

func TestGetSpaceUseCase_NotFound(t *testing.T) {
	uc := NewGetSpaceUseCase(&mockSpaceRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateSpaceUseCase(t *testing.T) {
	t.Run("patches selected fields", func(t *testing.T) {
		stored := newStoredSpace(t, 3)
		repo := &mockSpaceRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*space.Space, error) { return stored, nil },
		}
		uc := NewUpdateSpaceUseCase(repo, logger.NewNop())

		got, err := uc.Execute(context.Background(), UpdateSpaceCommand{
			ID:          3,
			Capacity:    intPtr(150),
			ClosingTime: strPtr("20:00"),
			Status:      strPtr("under_maintenance"),
		})
		require.NoError(t, err)
		assert.Equal(t, 150, got.Capacity)
		assert.Equal(t, "08:00:00", *got.OpeningTime)
		assert.Equal(t, "20:00:00", *got.ClosingTime)
		assert.Equal(t, "under_maintenance", got.Status)
		assert.Equal(t, "Auditorio Central", got.Name)
		assert.Equal(t, 1, repo.updateCalls)
	})

	t.Run("clearing a bound", func(t *testing.T) {
		stored := newStoredSpace(t, 3)
		repo := &mockSpaceRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*space.Space, error) { return stored, nil },
		}
		uc := NewUpdateSpaceUseCase(repo, logger.NewNop())

		got, err := uc.Execute(context.Background(), UpdateSpaceCommand{ID: 3, OpeningTime: strPtr("")})
		require.NoError(t, err)
		assert.Nil(t, got.OpeningTime)
	})

	t.Run("same validation as create", func(t *testing.T) {
		stored := newStoredSpace(t, 3)
		repo := &mockSpaceRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*space.Space, error) { return stored, nil },
		}
		uc := NewUpdateSpaceUseCase(repo, logger.NewNop())

		_, err := uc.Execute(context.Background(), UpdateSpaceCommand{ID: 3, Capacity: intPtr(0)})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))

		_, err = uc.Execute(context.Background(), UpdateSpaceCommand{ID: 3, OpeningTime: strPtr("23:00")})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("unknown space", func(t *testing.T) {
		uc := NewUpdateSpaceUseCase(&mockSpaceRepository{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), UpdateSpaceCommand{ID: 3, Name: strPtr("x")})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestDeactivateSpaceUseCase_Idempotent(t *testing.T) {
	stored := newStoredSpace(t, 5)
	repo := &mockSpaceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*space.Space, error) { return stored, nil },
	}
	uc := NewDeactivateSpaceUseCase(repo, logger.NewNop())

	first, err := uc.Execute(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, first.IsActive)

	second, err := uc.Execute(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, second.IsActive)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestListSpacesUseCase(t *testing.T) {
	active := newStoredSpace(t, 1)
	inactive := newStoredSpace(t, 2)
	inactive.Deactivate()

	repo := &mockSpaceRepository{
		ListActiveFunc: func(ctx context.Context) ([]*space.Space, error) { return []*space.Space{active}, nil },
		ListAllFunc: func(ctx context.Context) ([]*space.Space, error) {
			return []*space.Space{active, inactive}, nil
		},
	}
	uc := NewListSpacesUseCase(repo, logger.NewNop())

	list, err := uc.Execute(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = uc.Execute(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	repo.ListActiveFunc = func(ctx context.Context) ([]*space.Space, error) { return nil, errors.New("db down") }
	_, err = uc.Execute(context.Background(), false)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "failed to list spaces", appErr.Message)
}
