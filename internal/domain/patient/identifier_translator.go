package patient

import (
	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"

	"github.com/ehr/fhir2/internal/platform/fhir"
	"github.com/ehr/fhir2/pkg/fhirmodels"
)

type IdentifierTranslator = fhir.Translator[Identifier, r4.Identifier]

type identifierTranslator struct{}

func NewIdentifierTranslator() IdentifierTranslator {
	return identifierTranslator{}
}

func (identifierTranslator) ToFHIRResource(pi *Identifier) *r4.Identifier {
	id := &r4.Identifier{}
	if pi == nil {
		return id
	}
	if pi.UUID != "" {
		u := pi.UUID
		id.Id = &u
	}
	if pi.Identifier != "" {
		v := pi.Identifier
		id.Value = &v
	}
	if pi.TypeUUID != nil || pi.TypeName != nil {
		cc := &r4.CodeableConcept{Text: pi.TypeName}
		if pi.TypeUUID != nil {
			system := fhirmodels.IdentifierTypeSystem
			cc.Coding = []r4.Coding{{System: &system, Code: pi.TypeUUID, Display: pi.TypeName}}
		}
		id.Type = cc
	}

	use := r4.IdentifierUseUsual
	if pi.Preferred {
		use = r4.IdentifierUseOfficial
	}
	id.Use = &use
	return id
}

func (identifierTranslator) ToInternal(id *r4.Identifier) *Identifier {
	pi := &Identifier{}
	if id == nil {
		return pi
	}
	if id.Id != nil {
		pi.UUID = *id.Id
	}
	if id.Value != nil {
		pi.Identifier = *id.Value
	}
	if id.Type != nil {
		pi.TypeName = id.Type.Text
		for _, c := range id.Type.Coding {
			if c.System != nil && *c.System == fhirmodels.IdentifierTypeSystem {
				pi.TypeUUID = c.Code
				if pi.TypeName == nil {
					pi.TypeName = c.Display
				}
				break
			}
		}
	}
	pi.Preferred = id.Use != nil && *id.Use == r4.IdentifierUseOfficial
	return pi
}
