package patient

import (
	"time"

	"github.com/ehr/fhir2/internal/domain/address"
)

// Patient maps to the patient table and its name, identifier and address rows.
type Patient struct {
	UUID               string       `db:"uuid" json:"uuid"`
	Gender             *string      `db:"gender" json:"gender,omitempty"`
	BirthDate          *time.Time   `db:"birthdate" json:"birthdate,omitempty"`
	BirthDateEstimated bool         `db:"birthdate_estimated" json:"birthdate_estimated"`
	Dead               bool         `db:"dead" json:"dead"`
	DeathDate          *time.Time   `db:"death_date" json:"death_date,omitempty"`
	Voided             bool         `db:"voided" json:"voided"`
	DateCreated        time.Time    `db:"date_created" json:"date_created"`
	Names              []Name       `json:"names,omitempty"`
	Identifiers        []Identifier `json:"identifiers,omitempty"`
	Addresses          []Address    `json:"addresses,omitempty"`
}

// Name maps to the patient_name table.
type Name struct {
	UUID       string  `db:"uuid" json:"uuid"`
	Prefix     *string `db:"prefix" json:"prefix,omitempty"`
	GivenName  *string `db:"given_name" json:"given_name,omitempty"`
	MiddleName *string `db:"middle_name" json:"middle_name,omitempty"`
	FamilyName *string `db:"family_name" json:"family_name,omitempty"`
	Suffix     *string `db:"suffix" json:"suffix,omitempty"`
	Preferred  bool    `db:"preferred" json:"preferred"`
}

// Identifier maps to the patient_identifier table.
type Identifier struct {
	UUID       string  `db:"uuid" json:"uuid"`
	Identifier string  `db:"identifier" json:"identifier"`
	TypeUUID   *string `db:"type_uuid" json:"type_uuid,omitempty"`
	TypeName   *string `db:"type_name" json:"type_name,omitempty"`
	Preferred  bool    `db:"preferred" json:"preferred"`
}

// Address maps to the patient_address table.
type Address struct {
	UUID      string `db:"uuid" json:"uuid"`
	Preferred bool   `db:"preferred" json:"preferred"`
	address.Fields
}
