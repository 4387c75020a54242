package location

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no location has the requested UUID.
var ErrNotFound = errors.New("location not found")

// Repository defines the persistence interface for locations.
type Repository interface {
	GetByUUID(ctx context.Context, uuid string) (*Location, error)
	Search(ctx context.Context, params map[string]string) ([]*Location, error)
}
