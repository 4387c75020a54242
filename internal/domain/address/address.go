// Package address translates the address fields shared by locations and
// person addresses to and from the FHIR Address datatype.
package address

import (
	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// Fields is the internal address shape used by locations and patients.
type Fields struct {
	Address1       *string `db:"address1" json:"address1,omitempty"`
	Address2       *string `db:"address2" json:"address2,omitempty"`
	CityVillage    *string `db:"city_village" json:"city_village,omitempty"`
	CountyDistrict *string `db:"county_district" json:"county_district,omitempty"`
	StateProvince  *string `db:"state_province" json:"state_province,omitempty"`
	Country        *string `db:"country" json:"country,omitempty"`
	PostalCode     *string `db:"postal_code" json:"postal_code,omitempty"`
}

// IsEmpty reports whether no address field is set.
func (f *Fields) IsEmpty() bool {
	return f == nil || (f.Address1 == nil && f.Address2 == nil && f.CityVillage == nil &&
		f.CountyDistrict == nil && f.StateProvince == nil && f.Country == nil && f.PostalCode == nil)
}

// Translator maps Fields to r4.Address. Address1 and Address2 keep their
// line positions: a lone Address2 is written after an empty first line, and
// empty lines read back as unset.
type Translator struct{}

func NewTranslator() *Translator {
	return &Translator{}
}

func (Translator) ToFHIRResource(f *Fields) *r4.Address {
	a := &r4.Address{}
	if f == nil {
		return a
	}
	switch {
	case nonEmpty(f.Address2):
		a.Line = []string{"", *f.Address2}
		if nonEmpty(f.Address1) {
			a.Line[0] = *f.Address1
		}
	case nonEmpty(f.Address1):
		a.Line = []string{*f.Address1}
	}
	a.City = f.CityVillage
	a.District = f.CountyDistrict
	a.State = f.StateProvince
	a.Country = f.Country
	a.PostalCode = f.PostalCode
	return a
}

func (Translator) ToInternal(a *r4.Address) *Fields {
	f := &Fields{}
	if a == nil {
		return f
	}
	if len(a.Line) > 0 && a.Line[0] != "" {
		f.Address1 = &a.Line[0]
	}
	if len(a.Line) > 1 && a.Line[1] != "" {
		f.Address2 = &a.Line[1]
	}
	f.CityVillage = a.City
	f.CountyDistrict = a.District
	f.StateProvince = a.State
	f.Country = a.Country
	f.PostalCode = a.PostalCode
	return f
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}
