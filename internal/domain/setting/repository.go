package setting

import "context"

type Repository interface {
	// GetByKey returns ErrSettingNotFound when the key is absent.
	GetByKey(ctx context.Context, key string) (*Setting, error)
	GetAll(ctx context.Context) ([]*Setting, error)
	// Upsert creates the entry or replaces value, type and description.
	Upsert(ctx context.Context, s *Setting) error
}
