package fhir

import (
	"fmt"
	"strings"

	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// FormatReference creates a FHIR reference string.
func FormatReference(resourceType, id string) string {
	return fmt.Sprintf("%s/%s", resourceType, id)
}

// NewReference returns a literal reference to resourceType/id, or nil when id is empty.
func NewReference(resourceType string, id *string) *r4.Reference {
	if id == nil || *id == "" {
		return nil
	}
	ref := FormatReference(resourceType, *id)
	rt := resourceType
	return &r4.Reference{Reference: &ref, Type: &rt}
}

// ReferenceID extracts the id from a literal reference of the given type.
// Absolute URLs are accepted as long as they end in resourceType/id.
func ReferenceID(ref *r4.Reference, resourceType string) *string {
	if ref == nil || ref.Reference == nil {
		return nil
	}
	parts := strings.Split(strings.TrimRight(*ref.Reference, "/"), "/")
	if len(parts) < 2 || parts[len(parts)-2] != resourceType || parts[len(parts)-1] == "" {
		return nil
	}
	id := parts[len(parts)-1]
	return &id
}
