package location

import (
	"time"

	"github.com/ehr/fhir2/internal/domain/address"
)

// Location maps to the location table.
type Location struct {
	UUID        string    `db:"uuid" json:"uuid"`
	Name        *string   `db:"name" json:"name,omitempty"`
	Description *string   `db:"description" json:"description,omitempty"`
	Latitude    *string   `db:"latitude" json:"latitude,omitempty"`
	Longitude   *string   `db:"longitude" json:"longitude,omitempty"`
	Retired     bool      `db:"retired" json:"retired"`
	DateCreated time.Time `db:"date_created" json:"date_created"`
	address.Fields
}
