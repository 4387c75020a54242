package location

import (
	"strconv"
	"strings"

	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"

	"github.com/ehr/fhir2/internal/domain/address"
	"github.com/ehr/fhir2/internal/platform/fhir"
)

// AddressTranslator converts the address portion of a location.
type AddressTranslator = fhir.Translator[address.Fields, r4.Address]

// Translator converts between Location and r4.Location.
type Translator struct {
	addresses AddressTranslator
}

var _ fhir.Translator[Location, r4.Location] = (*Translator)(nil)

func NewTranslator(addresses AddressTranslator) *Translator {
	return &Translator{addresses: addresses}
}

func (t *Translator) ToFHIRResource(loc *Location) *r4.Location {
	res := &r4.Location{}
	if loc == nil {
		return res
	}

	if loc.UUID != "" {
		id := loc.UUID
		res.Id = &id
	}
	res.Name = loc.Name
	res.Description = loc.Description

	status := r4.LocationStatusActive
	if loc.Retired {
		status = r4.LocationStatusInactive
	}
	res.Status = &status

	res.Position = position(loc.Latitude, loc.Longitude)

	if !loc.Fields.IsEmpty() {
		res.Address = t.addresses.ToFHIRResource(&loc.Fields)
	}
	return res
}

func (t *Translator) ToInternal(res *r4.Location) *Location {
	loc := &Location{}
	if res == nil {
		return loc
	}

	if res.Id != nil {
		loc.UUID = *res.Id
	}
	loc.Name = res.Name
	loc.Description = res.Description
	loc.Retired = res.Status != nil && *res.Status == r4.LocationStatusInactive

	if res.Position != nil {
		loc.Latitude = decimalString(res.Position.Latitude)
		loc.Longitude = decimalString(res.Position.Longitude)
	}

	if res.Address != nil {
		loc.Fields = *t.addresses.ToInternal(res.Address)
	}
	return loc
}

// position returns nil unless both coordinates are decimal numbers. A nil
// position is the only "unset" marker: the model's coordinates are plain
// float64, so 0,0 is a real position.
func position(lat, long *string) *r4.LocationPosition {
	if lat == nil || long == nil {
		return nil
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(*lat), 64)
	if err != nil {
		return nil
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(*long), 64)
	if err != nil {
		return nil
	}
	return &r4.LocationPosition{Latitude: la, Longitude: lo}
}

// decimalString renders v in the shortest form that parses back to v.
func decimalString(v float64) *string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return &s
}
