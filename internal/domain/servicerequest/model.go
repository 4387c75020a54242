package servicerequest

import (
	"time"

	"github.com/ehr/fhir2/pkg/fhirmodels"
)

// TestOrder maps to the test_order table.
type TestOrder struct {
	UUID           string     `db:"uuid" json:"uuid"`
	OrderNumber    *string    `db:"order_number" json:"order_number,omitempty"`
	Action         string     `db:"order_action" json:"order_action"`
	Urgency        *string    `db:"urgency" json:"urgency,omitempty"`
	ConceptCode    *string    `db:"concept_code" json:"concept_code,omitempty"`
	ConceptDisplay *string    `db:"concept_display" json:"concept_display,omitempty"`
	PatientUUID    *string    `db:"patient_uuid" json:"patient_uuid,omitempty"`
	OrdererUUID    *string    `db:"orderer_uuid" json:"orderer_uuid,omitempty"`
	DateActivated  *time.Time `db:"date_activated" json:"date_activated,omitempty"`
	DateStopped    *time.Time `db:"date_stopped" json:"date_stopped,omitempty"`
	AutoExpireDate *time.Time `db:"auto_expire_date" json:"auto_expire_date,omitempty"`
	Voided         bool       `db:"voided" json:"voided"`
}

// Stopped reports whether the order was discontinued or stopped.
func (o *TestOrder) Stopped() bool {
	return o.Action == fhirmodels.OrderActionDiscontinue || o.DateStopped != nil
}
