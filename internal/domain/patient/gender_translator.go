package patient

import (
	"strings"

	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"

	"github.com/ehr/fhir2/pkg/fhirmodels"
)

// GenderTranslator maps single-letter gender codes to FHIR administrative
// gender. Unrecognised values map to nil in both directions.
type GenderTranslator interface {
	ToFHIRGender(gender *string) *r4.AdministrativeGender
	ToInternalGender(gender *r4.AdministrativeGender) *string
}

type genderTranslator struct{}

func NewGenderTranslator() GenderTranslator {
	return genderTranslator{}
}

var genderToFHIR = map[string]r4.AdministrativeGender{
	fhirmodels.GenderMale:    r4.AdministrativeGenderMale,
	fhirmodels.GenderFemale:  r4.AdministrativeGenderFemale,
	fhirmodels.GenderOther:   r4.AdministrativeGenderOther,
	fhirmodels.GenderUnknown: r4.AdministrativeGenderUnknown,
}

func (genderTranslator) ToFHIRGender(gender *string) *r4.AdministrativeGender {
	if gender == nil {
		return nil
	}
	g, ok := genderToFHIR[*gender]
	if !ok {
		return nil
	}
	return &g
}

func (genderTranslator) ToInternalGender(gender *r4.AdministrativeGender) *string {
	if gender == nil {
		return nil
	}
	for code, g := range genderToFHIR {
		if g == *gender {
			c := code
			return &c
		}
	}
	return nil
}

// GenderCode converts a FHIR gender search value ("female") to the stored
// code. It is used as the gender search parameter normalizer.
func GenderCode(value string) (string, bool) {
	code, ok := genderSearchCodes[strings.ToLower(value)]
	return code, ok
}

var genderSearchCodes = map[string]string{
	"male":    fhirmodels.GenderMale,
	"female":  fhirmodels.GenderFemale,
	"other":   fhirmodels.GenderOther,
	"unknown": fhirmodels.GenderUnknown,
}
