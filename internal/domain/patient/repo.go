package patient

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no patient has the requested UUID.
var ErrNotFound = errors.New("patient not found")

// Repository defines the persistence interface for patients. Returned
// patients carry their names, identifiers and addresses.
type Repository interface {
	GetByUUID(ctx context.Context, uuid string) (*Patient, error)
	Search(ctx context.Context, params map[string]string) ([]*Patient, error)
}
