package patient

import (
	"strings"

	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"

	"github.com/ehr/fhir2/internal/platform/fhir"
)

// NameTranslator converts person names. Given and middle names become the
// FHIR given list, with an empty first entry when only a middle name is
// known. The preferred name is the official one.
type NameTranslator = fhir.Translator[Name, r4.HumanName]

type nameTranslator struct{}

func NewNameTranslator() NameTranslator {
	return nameTranslator{}
}

func (nameTranslator) ToFHIRResource(n *Name) *r4.HumanName {
	hn := &r4.HumanName{}
	if n == nil {
		return hn
	}
	if n.UUID != "" {
		id := n.UUID
		hn.Id = &id
	}
	given, middle := stringValue(n.GivenName), stringValue(n.MiddleName)
	switch {
	case middle != "":
		// The middle name stays second so it is not read back as the given name.
		hn.Given = []string{given, middle}
	case given != "":
		hn.Given = []string{given}
	}
	hn.Family = n.FamilyName
	if n.Prefix != nil && *n.Prefix != "" {
		hn.Prefix = []string{*n.Prefix}
	}
	if n.Suffix != nil && *n.Suffix != "" {
		hn.Suffix = []string{*n.Suffix}
	}

	use := r4.NameUseUsual
	if n.Preferred {
		use = r4.NameUseOfficial
	}
	hn.Use = &use
	return hn
}

func (nameTranslator) ToInternal(hn *r4.HumanName) *Name {
	n := &Name{}
	if hn == nil {
		return n
	}
	if hn.Id != nil {
		n.UUID = *hn.Id
	}
	if len(hn.Given) > 0 && hn.Given[0] != "" {
		given := hn.Given[0]
		n.GivenName = &given
	}
	if len(hn.Given) > 1 {
		middle := strings.Join(hn.Given[1:], " ")
		n.MiddleName = &middle
	}
	n.FamilyName = hn.Family
	if len(hn.Prefix) > 0 {
		p := strings.Join(hn.Prefix, " ")
		n.Prefix = &p
	}
	if len(hn.Suffix) > 0 {
		s := strings.Join(hn.Suffix, " ")
		n.Suffix = &s
	}
	n.Preferred = hn.Use != nil && *hn.Use == r4.NameUseOfficial
	return n
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
