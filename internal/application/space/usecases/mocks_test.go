package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/domain/space"
)

type mockSpaceRepository struct {
	CreateFunc         func(ctx context.Context, s *space.Space) error
	GetByIDFunc        func(ctx context.Context, id uint) (*space.Space, error)
	UpdateFunc         func(ctx context.Context, s *space.Space) error
	ListActiveFunc     func(ctx context.Context) ([]*space.Space, error)
	ListAllFunc        func(ctx context.Context) ([]*space.Space, error)
	LockForBookingFunc func(ctx context.Context, id uint) error

	updateCalls int
}

func (m *mockSpaceRepository) Create(ctx context.Context, s *space.Space) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	s.SetID(1)
	return nil
}

func (m *mockSpaceRepository) GetByID(ctx context.Context, id uint) (*space.Space, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, space.ErrSpaceNotFound
}

func (m *mockSpaceRepository) Update(ctx context.Context, s *space.Space) error {
	m.updateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSpaceRepository) ListActive(ctx context.Context) ([]*space.Space, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockSpaceRepository) ListAll(ctx context.Context) ([]*space.Space, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockSpaceRepository) LockForBooking(ctx context.Context, id uint) error {
	if m.LockForBookingFunc != nil {
		return m.LockForBookingFunc(ctx, id)
	}
	return nil
}
