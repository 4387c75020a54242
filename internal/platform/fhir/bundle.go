package fhir

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// SearchResult couples a serialized resource with its type and id.
type SearchResult struct {
	ResourceType string
	ID           string
	Resource     json.RawMessage
}

// NewSearchResult marshals resource into a SearchResult.
func NewSearchResult(resourceType string, id *string, resource interface{}) (SearchResult, error) {
	raw, err := json.Marshal(resource)
	if err != nil {
		return SearchResult{}, fmt.Errorf("marshal %s: %w", resourceType, err)
	}
	res := SearchResult{ResourceType: resourceType, Resource: raw}
	if id != nil {
		res.ID = *id
	}
	return res, nil
}

// NewSearchBundle wraps results in a searchset Bundle. total always equals the
// number of entries because searches return every match. selfURL may be empty.
func NewSearchBundle(results []SearchResult, selfURL string) *r4.Bundle {
	now := time.Now().UTC()
	entries := make([]r4.BundleEntry, 0, len(results))
	for _, r := range results {
		entry := r4.BundleEntry{Resource: r.Resource}
		if r.ResourceType != "" && r.ID != "" {
			entry.FullUrl = to.Ptr(FormatReference(r.ResourceType, r.ID))
		}
		entries = append(entries, entry)
	}

	bundle := &r4.Bundle{
		Type:      r4.BundleTypeSearchset,
		Total:     to.Ptr(len(entries)),
		Timestamp: to.Ptr(now.Format(time.RFC3339)),
		Entry:     entries,
	}
	if selfURL != "" {
		bundle.Link = []r4.BundleLink{{Relation: "self", Url: selfURL}}
	}
	return bundle
}

// ConvertSearchResultsToBundle marshals each resource and wraps them in a
// searchset Bundle. idOf extracts the resource id of each element.
func ConvertSearchResultsToBundle[E any](resourceType string, resources []E, idOf func(*E) *string, selfURL string) (*r4.Bundle, error) {
	results := make([]SearchResult, 0, len(resources))
	for i := range resources {
		r, err := NewSearchResult(resourceType, idOf(&resources[i]), resources[i])
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return NewSearchBundle(results, selfURL), nil
}
