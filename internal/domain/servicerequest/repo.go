package servicerequest

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no test order has the requested UUID.
var ErrNotFound = errors.New("test order not found")

// Repository defines the persistence interface for test orders.
type Repository interface {
	GetByUUID(ctx context.Context, uuid string) (*TestOrder, error)
	List(ctx context.Context) ([]*TestOrder, error)
}
