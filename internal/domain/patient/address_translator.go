package patient

import (
	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"

	"github.com/ehr/fhir2/internal/domain/address"
	"github.com/ehr/fhir2/internal/platform/fhir"
)

type AddressTranslator = fhir.Translator[Address, r4.Address]

// addressTranslator reuses the shared address field mapping and marks the
// preferred address as the home address.
type addressTranslator struct {
	fields fhir.Translator[address.Fields, r4.Address]
}

func NewAddressTranslator(fields fhir.Translator[address.Fields, r4.Address]) AddressTranslator {
	return &addressTranslator{fields: fields}
}

func (t *addressTranslator) ToFHIRResource(pa *Address) *r4.Address {
	if pa == nil {
		return &r4.Address{}
	}
	a := t.fields.ToFHIRResource(&pa.Fields)
	if pa.UUID != "" {
		id := pa.UUID
		a.Id = &id
	}
	if pa.Preferred {
		use := r4.AddressUseHome
		a.Use = &use
	}
	return a
}

func (t *addressTranslator) ToInternal(a *r4.Address) *Address {
	pa := &Address{}
	if a == nil {
		return pa
	}
	pa.Fields = *t.fields.ToInternal(a)
	if a.Id != nil {
		pa.UUID = *a.Id
	}
	pa.Preferred = a.Use != nil && *a.Use == r4.AddressUseHome
	return pa
}
