package fhir

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

func TestConvertSearchResultsToBundle(t *testing.T) {
	locations := []r4.Location{
		{Id: to.Ptr("loc-1"), Name: to.Ptr("Ward A")},
		{Id: to.Ptr("loc-2"), Name: to.Ptr("Ward B")},
	}

	bundle, err := ConvertSearchResultsToBundle("Location", locations, func(l *r4.Location) *string { return l.Id }, "/fhir/Location")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bundle.Type != r4.BundleTypeSearchset {
		t.Errorf("expected searchset, got %v", bundle.Type)
	}
	if bundle.Total == nil || *bundle.Total != 2 {
		t.Fatalf("expected total 2, got %v", bundle.Total)
	}
	if len(bundle.Entry) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(bundle.Entry))
	}
	if *bundle.Entry[0].FullUrl != "Location/loc-1" {
		t.Errorf("unexpected fullUrl %s", *bundle.Entry[0].FullUrl)
	}
	if !strings.Contains(string(bundle.Entry[1].Resource), `"Ward B"`) {
		t.Errorf("unexpected resource %s", bundle.Entry[1].Resource)
	}
	if len(bundle.Link) != 1 || bundle.Link[0].Relation != "self" || bundle.Link[0].Url != "/fhir/Location" {
		t.Errorf("unexpected links %+v", bundle.Link)
	}
	if bundle.Timestamp == nil {
		t.Error("expected timestamp")
	}
}

func TestConvertSearchResultsToBundle_Empty(t *testing.T) {
	bundle, err := ConvertSearchResultsToBundle("Patient", []r4.Patient{}, func(p *r4.Patient) *string { return p.Id }, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *bundle.Total != 0 {
		t.Errorf("expected total 0, got %d", *bundle.Total)
	}
	if len(bundle.Link) != 0 {
		t.Errorf("expected no links, got %+v", bundle.Link)
	}

	data, err := json.Marshal(bundle)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"resourceType":"Bundle"`) || !strings.Contains(s, `"type":"searchset"`) {
		t.Errorf("unexpected bundle JSON %s", s)
	}
}

func TestNewSearchBundle_MissingID(t *testing.T) {
	r, err := NewSearchResult("ServiceRequest", nil, map[string]string{"resourceType": "ServiceRequest"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bundle := NewSearchBundle([]SearchResult{r}, "")
	if bundle.Entry[0].FullUrl != nil {
		t.Errorf("expected no fullUrl, got %s", *bundle.Entry[0].FullUrl)
	}
}
