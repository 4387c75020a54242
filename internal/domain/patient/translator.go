package patient

import (
	"time"

	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"

	"github.com/ehr/fhir2/internal/domain/address"
	"github.com/ehr/fhir2/internal/platform/fhir"
	"github.com/ehr/fhir2/pkg/fhirmodels"
)

// Translator converts between Patient and r4.Patient by composing the name,
// gender, identifier and address translators.
type Translator struct {
	names       NameTranslator
	genders     GenderTranslator
	identifiers IdentifierTranslator
	addresses   AddressTranslator
}

var _ fhir.Translator[Patient, r4.Patient] = (*Translator)(nil)

func NewTranslator(names NameTranslator, genders GenderTranslator, identifiers IdentifierTranslator, addresses AddressTranslator) *Translator {
	return &Translator{
		names:       names,
		genders:     genders,
		identifiers: identifiers,
		addresses:   addresses,
	}
}

// NewDefaultTranslator wires the package's own sub-translators.
func NewDefaultTranslator() *Translator {
	return NewTranslator(
		NewNameTranslator(),
		NewGenderTranslator(),
		NewIdentifierTranslator(),
		NewAddressTranslator(address.NewTranslator()),
	)
}

func (t *Translator) ToFHIRResource(p *Patient) *r4.Patient {
	res := &r4.Patient{}
	if p == nil {
		return res
	}

	if p.UUID != "" {
		id := p.UUID
		res.Id = &id
	}
	active := !p.Voided
	res.Active = &active

	for i := range p.Names {
		res.Name = append(res.Name, *t.names.ToFHIRResource(&p.Names[i]))
	}
	res.Gender = t.genders.ToFHIRGender(p.Gender)
	for i := range p.Identifiers {
		res.Identifier = append(res.Identifier, *t.identifiers.ToFHIRResource(&p.Identifiers[i]))
	}
	for i := range p.Addresses {
		res.Address = append(res.Address, *t.addresses.ToFHIRResource(&p.Addresses[i]))
	}

	if p.BirthDate != nil {
		bd := p.BirthDate.Format(fhirmodels.DateLayout)
		res.BirthDate = &bd
	}
	switch {
	case p.DeathDate != nil:
		dd := p.DeathDate.UTC().Format(time.RFC3339)
		res.DeceasedDateTime = &dd
	default:
		dead := p.Dead
		res.DeceasedBoolean = &dead
	}
	return res
}

func (t *Translator) ToInternal(res *r4.Patient) *Patient {
	p := &Patient{}
	if res == nil {
		return p
	}

	if res.Id != nil {
		p.UUID = *res.Id
	}
	p.Voided = res.Active != nil && !*res.Active

	for i := range res.Name {
		p.Names = append(p.Names, *t.names.ToInternal(&res.Name[i]))
	}
	p.Gender = t.genders.ToInternalGender(res.Gender)
	for i := range res.Identifier {
		p.Identifiers = append(p.Identifiers, *t.identifiers.ToInternal(&res.Identifier[i]))
	}
	for i := range res.Address {
		p.Addresses = append(p.Addresses, *t.addresses.ToInternal(&res.Address[i]))
	}

	if res.BirthDate != nil {
		if bd, err := time.Parse(fhirmodels.DateLayout, *res.BirthDate); err == nil {
			p.BirthDate = &bd
		}
	}
	if res.DeceasedBoolean != nil {
		p.Dead = *res.DeceasedBoolean
	}
	if res.DeceasedDateTime != nil {
		if dd, err := time.Parse(time.RFC3339, *res.DeceasedDateTime); err == nil {
			p.Dead = true
			p.DeathDate = &dd
		}
	}
	return p
}
