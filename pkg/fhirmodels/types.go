package fhirmodels

// Internal value set constants shared by the translators.

// Person gender codes stored by the records system.
const (
	GenderMale    = "M"
	GenderFemale  = "F"
	GenderOther   = "O"
	GenderUnknown = "U"
)

// Order actions.
const (
	OrderActionNew         = "NEW"
	OrderActionRevise      = "REVISE"
	OrderActionDiscontinue = "DISCONTINUE"
	OrderActionRenew       = "RENEW"
)

// Order urgencies.
const (
	UrgencyRoutine         = "ROUTINE"
	UrgencyStat            = "STAT"
	UrgencyOnScheduledDate = "ON_SCHEDULED_DATE"
)

// Coding systems.
const (
	// ConceptSystem identifies codes taken from the records system's own
	// concept dictionary (concept UUIDs).
	ConceptSystem = "http://openmrs.org/concepts"
	// IdentifierTypeSystem identifies patient identifier types.
	IdentifierTypeSystem = "http://openmrs.org/identifier-types"
)

// Extensions carrying order details a ServiceRequest has no element for.
const (
	OrderActionExtension    = "http://openmrs.org/fhir/StructureDefinition/order-action"
	DateStoppedExtension    = "http://openmrs.org/fhir/StructureDefinition/order-date-stopped"
	AutoExpireDateExtension = "http://openmrs.org/fhir/StructureDefinition/order-auto-expire-date"
)

// Date layouts used on the FHIR side.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05Z07:00"
)
