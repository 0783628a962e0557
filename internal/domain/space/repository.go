package space

import "context"

// Repository persists spaces. GetByID returns ErrSpaceNotFound for unknown
// IDs and also returns inactive spaces.
type Repository interface {
	Create(ctx context.Context, s *Space) error
	GetByID(ctx context.Context, id uint) (*Space, error)
	Update(ctx context.Context, s *Space) error
	ListActive(ctx context.Context) ([]*Space, error)
	ListAll(ctx context.Context) ([]*Space, error)
	// LockForBooking takes a row lock on the space for the rest of the
	// current transaction. Reservation writers for the same space queue
	// behind it.
	LockForBooking(ctx context.Context, id uint) error
}
