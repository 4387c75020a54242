package fhir

import (
	"errors"
	"fmt"
)

// ErrResourceNotFound is matched by errors.Is for every ResourceNotFoundError.
var ErrResourceNotFound = errors.New("resource not found")

// ResourceNotFoundError reports that no resource of ResourceType exists with ID.
type ResourceNotFoundError struct {
	ResourceType string
	ID           string
}

func NewResourceNotFoundError(resourceType, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{ResourceType: resourceType, ID: id}
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("Could not find %s with Id %s", e.ResourceType, e.ID)
}

func (e *ResourceNotFoundError) Is(target error) bool {
	return target == ErrResourceNotFound
}
