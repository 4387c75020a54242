package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"

	"github.com/ehr/fhir2/internal/domain/address"
)

const (
	locationUUID        = "c0938432-1691-11df-97a5-7038c432aaba"
	locationName        = "Test location 1"
	locationDescription = "Test description"
	locationLatitude    = "25.5"
	locationLongitude   = "25.5"
)

// stubAddressTranslator records calls and returns canned values.
type stubAddressTranslator struct {
	toFHIR     int
	toInternal int
}

func (s *stubAddressTranslator) ToFHIRResource(f *address.Fields) *r4.Address {
	s.toFHIR++
	return &r4.Address{City: f.CityVillage}
}

func (s *stubAddressTranslator) ToInternal(a *r4.Address) *address.Fields {
	s.toInternal++
	return &address.Fields{CityVillage: a.City}
}

func newTestTranslator() (*Translator, *stubAddressTranslator) {
	stub := &stubAddressTranslator{}
	return NewTranslator(stub), stub
}

func TestToFHIRResource_EmptyLocation(t *testing.T) {
	tr, _ := newTestTranslator()
	loc := &Location{}

	res := tr.ToFHIRResource(loc)

	require.NotNil(t, res)
	assert.Nil(t, res.Name)
	assert.Nil(t, res.Id)
}

func TestToFHIRResource_UUIDToID(t *testing.T) {
	tr, _ := newTestTranslator()

	res := tr.ToFHIRResource(&Location{UUID: locationUUID})

	require.NotNil(t, res.Id)
	assert.Equal(t, locationUUID, *res.Id)
}

func TestToFHIRResource_NameAndDescription(t *testing.T) {
	tr, _ := newTestTranslator()

	res := tr.ToFHIRResource(&Location{Name: to.Ptr(locationName), Description: to.Ptr(locationDescription)})

	require.NotNil(t, res.Name)
	assert.Equal(t, locationName, *res.Name)
	require.NotNil(t, res.Description)
	assert.Equal(t, locationDescription, *res.Description)
}

func TestToFHIRResource_NilInput(t *testing.T) {
	tr, stub := newTestTranslator()

	res := tr.ToFHIRResource(nil)

	require.NotNil(t, res)
	assert.Nil(t, res.Id)
	assert.Nil(t, res.Name)
	assert.Nil(t, res.Description)
	assert.Nil(t, res.Status)
	assert.Nil(t, res.Position)
	assert.Nil(t, res.Address)
	assert.Zero(t, stub.toFHIR)
}

func TestToInternal_NilInput(t *testing.T) {
	tr, _ := newTestTranslator()

	loc := tr.ToInternal(nil)

	require.NotNil(t, loc)
	assert.Empty(t, loc.UUID)
	assert.Nil(t, loc.Name)
	assert.Nil(t, loc.Description)
	assert.Nil(t, loc.Latitude)
	assert.Nil(t, loc.Longitude)
	assert.Nil(t, loc.Country)
	assert.False(t, loc.Retired)
}

func TestToInternal_EmptyResource(t *testing.T) {
	tr, stub := newTestTranslator()

	loc := tr.ToInternal(&r4.Location{})

	require.NotNil(t, loc)
	assert.Nil(t, loc.Name)
	assert.True(t, loc.Fields.IsEmpty())
	assert.Zero(t, stub.toInternal)
}

func TestToInternal_Fields(t *testing.T) {
	tr, _ := newTestTranslator()

	loc := tr.ToInternal(&r4.Location{
		Id:          to.Ptr(locationUUID),
		Name:        to.Ptr(locationName),
		Description: to.Ptr(locationDescription),
	})

	assert.Equal(t, locationUUID, loc.UUID)
	require.NotNil(t, loc.Name)
	assert.Equal(t, locationName, *loc.Name)
	require.NotNil(t, loc.Description)
	assert.Equal(t, locationDescription, *loc.Description)
}

func TestToFHIRResource_Position(t *testing.T) {
	tr, _ := newTestTranslator()

	res := tr.ToFHIRResource(&Location{Latitude: to.Ptr(locationLatitude), Longitude: to.Ptr(locationLongitude)})

	require.NotNil(t, res.Position)
	assert.Equal(t, 25.5, res.Position.Latitude)
	assert.Equal(t, 25.5, res.Position.Longitude)
}

func TestToFHIRResource_PositionAtOrigin(t *testing.T) {
	tr, _ := newTestTranslator()

	res := tr.ToFHIRResource(&Location{Latitude: to.Ptr("0"), Longitude: to.Ptr("-0.0")})

	require.NotNil(t, res.Position)
	assert.Equal(t, 0.0, res.Position.Latitude)

	loc := tr.ToInternal(res)
	require.NotNil(t, loc.Latitude)
	assert.Equal(t, "0", *loc.Latitude)
}

func TestToInternal_Position(t *testing.T) {
	tr, _ := newTestTranslator()

	loc := tr.ToInternal(&r4.Location{Position: &r4.LocationPosition{Latitude: -1.2833, Longitude: 36.8167}})

	require.NotNil(t, loc.Latitude)
	require.NotNil(t, loc.Longitude)
	assert.Equal(t, "-1.2833", *loc.Latitude)
	assert.Equal(t, "36.8167", *loc.Longitude)
}

func TestToFHIRResource_PositionRequiresBothDecimals(t *testing.T) {
	tr, _ := newTestTranslator()

	tests := []struct {
		name      string
		lat, long *string
	}{
		{"latitude only", to.Ptr("25.5"), nil},
		{"longitude only", nil, to.Ptr("25.5")},
		{"not a number", to.Ptr("north"), to.Ptr("25.5")},
		{"empty", to.Ptr(""), to.Ptr("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tr.ToFHIRResource(&Location{Latitude: tt.lat, Longitude: tt.long})
			assert.Nil(t, res.Position)
		})
	}
}

func TestToFHIRResource_Status(t *testing.T) {
	tr, _ := newTestTranslator()

	active := tr.ToFHIRResource(&Location{Retired: false})
	require.NotNil(t, active.Status)
	assert.Equal(t, r4.LocationStatusActive, *active.Status)

	inactive := tr.ToFHIRResource(&Location{Retired: true})
	require.NotNil(t, inactive.Status)
	assert.Equal(t, r4.LocationStatusInactive, *inactive.Status)
}

func TestToInternal_Status(t *testing.T) {
	tr, _ := newTestTranslator()

	inactive := r4.LocationStatusInactive
	assert.True(t, tr.ToInternal(&r4.Location{Status: &inactive}).Retired)

	suspended := r4.LocationStatusSuspended
	assert.False(t, tr.ToInternal(&r4.Location{Status: &suspended}).Retired)
}

func TestTranslator_DelegatesAddress(t *testing.T) {
	tr, stub := newTestTranslator()

	res := tr.ToFHIRResource(&Location{Fields: address.Fields{CityVillage: to.Ptr("Kampala")}})
	require.NotNil(t, res.Address)
	assert.Equal(t, "Kampala", *res.Address.City)
	assert.Equal(t, 1, stub.toFHIR)

	loc := tr.ToInternal(res)
	assert.Equal(t, "Kampala", *loc.CityVillage)
	assert.Equal(t, 1, stub.toInternal)
}

func TestTranslator_RoundTrip(t *testing.T) {
	tr := NewTranslator(address.NewTranslator())
	in := &Location{
		UUID:        locationUUID,
		Name:        to.Ptr(locationName),
		Description: to.Ptr(locationDescription),
		Latitude:    to.Ptr(locationLatitude),
		Longitude:   to.Ptr(locationLongitude),
		Retired:     true,
		Fields: address.Fields{
			Address1:    to.Ptr("Plot 12"),
			CityVillage: to.Ptr("Kampala"),
			Country:     to.Ptr("Uganda"),
		},
	}

	out := tr.ToInternal(tr.ToFHIRResource(in))

	assert.Equal(t, in.UUID, out.UUID)
	assert.Equal(t, *in.Name, *out.Name)
	assert.Equal(t, *in.Description, *out.Description)
	assert.Equal(t, *in.Latitude, *out.Latitude)
	assert.Equal(t, *in.Longitude, *out.Longitude)
	assert.Equal(t, in.Retired, out.Retired)
	assert.Equal(t, in.Fields, out.Fields)
}

func TestTranslator_RoundTripSparse(t *testing.T) {
	tr := NewTranslator(address.NewTranslator())

	tests := []struct {
		name string
		in   Location
		want Location
	}{
		{
			name: "name only",
			in:   Location{UUID: locationUUID, Name: to.Ptr(locationName)},
			want: Location{UUID: locationUUID, Name: to.Ptr(locationName)},
		},
		{
			name: "second address line only",
			in:   Location{UUID: locationUUID, Fields: address.Fields{Address2: to.Ptr("Block B")}},
			want: Location{UUID: locationUUID, Fields: address.Fields{Address2: to.Ptr("Block B")}},
		},
		{
			name: "postal code only",
			in:   Location{Fields: address.Fields{PostalCode: to.Ptr("00100")}},
			want: Location{Fields: address.Fields{PostalCode: to.Ptr("00100")}},
		},
		{
			// a lone coordinate never forms a position
			name: "latitude only",
			in:   Location{UUID: locationUUID, Latitude: to.Ptr(locationLatitude)},
			want: Location{UUID: locationUUID},
		},
		{
			name: "retired without coordinates",
			in:   Location{UUID: locationUUID, Retired: true},
			want: Location{UUID: locationUUID, Retired: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tr.ToInternal(tr.ToFHIRResource(&tt.in))
			assert.Equal(t, &tt.want, out)
		})
	}
}
