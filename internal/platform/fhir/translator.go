package fhir

// Translator converts an internal record of type I to its FHIR resource E and
// back. Implementations are stateless and safe to reuse across requests.
//
// Both directions accept nil and return a non-nil, empty value in that case;
// translation never fails.
type Translator[I any, E any] interface {
	ToFHIRResource(internal *I) *E
	ToInternal(resource *E) *I
}

// TranslateAll applies ToFHIRResource to every record, preserving order.
func TranslateAll[I any, E any](t Translator[I, E], records []*I) []E {
	out := make([]E, 0, len(records))
	for _, r := range records {
		out = append(out, *t.ToFHIRResource(r))
	}
	return out
}
