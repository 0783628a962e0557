package space

import "errors"

var (
	ErrSpaceNotFound    = errors.New("space not found")
	ErrNameRequired     = errors.New("space name is required")
	ErrLocationRequired = errors.New("space location is required")
	ErrInvalidCapacity  = errors.New("capacity must be a positive integer")
)
