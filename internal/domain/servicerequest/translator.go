package servicerequest

import (
	"time"

	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"

	"github.com/ehr/fhir2/internal/platform/fhir"
	"github.com/ehr/fhir2/pkg/fhirmodels"
)

// Translator converts between TestOrder and r4.ServiceRequest.
type Translator struct{}

var _ fhir.Translator[TestOrder, r4.ServiceRequest] = (*Translator)(nil)

func NewTranslator() *Translator {
	return &Translator{}
}

func (t *Translator) ToFHIRResource(o *TestOrder) *r4.ServiceRequest {
	sr := &r4.ServiceRequest{}
	if o == nil {
		return sr
	}

	if o.UUID != "" {
		id := o.UUID
		sr.Id = &id
	}
	if o.OrderNumber != nil {
		sr.Identifier = []r4.Identifier{{Value: o.OrderNumber}}
	}

	switch {
	case o.Voided:
		sr.Status = r4.RequestStatusEnteredInError
	case o.Stopped():
		sr.Status = r4.RequestStatusRevoked
	default:
		sr.Status = r4.RequestStatusActive
	}
	sr.Intent = r4.RequestIntentOrder
	sr.Priority = toPriority(o.Urgency)

	if o.ConceptCode != nil || o.ConceptDisplay != nil {
		cc := &r4.CodeableConcept{Text: o.ConceptDisplay}
		if o.ConceptCode != nil {
			system := fhirmodels.ConceptSystem
			cc.Coding = []r4.Coding{{System: &system, Code: o.ConceptCode, Display: o.ConceptDisplay}}
		}
		sr.Code = cc
	}

	if subject := fhir.NewReference("Patient", o.PatientUUID); subject != nil {
		sr.Subject = *subject
	}
	sr.Requester = fhir.NewReference("Practitioner", o.OrdererUUID)

	if o.Action != "" {
		action := o.Action
		sr.Extension = append(sr.Extension, r4.Extension{Url: fhirmodels.OrderActionExtension, ValueCode: &action})
	}
	if o.DateStopped != nil {
		sr.Extension = append(sr.Extension, r4.Extension{Url: fhirmodels.DateStoppedExtension, ValueDateTime: formatTime(o.DateStopped)})
	}
	if o.AutoExpireDate != nil {
		sr.Extension = append(sr.Extension, r4.Extension{Url: fhirmodels.AutoExpireDateExtension, ValueDateTime: formatTime(o.AutoExpireDate)})
	}

	sr.AuthoredOn = formatTime(o.DateActivated)
	end := o.DateStopped
	if end == nil {
		end = o.AutoExpireDate
	}
	if o.DateActivated != nil || end != nil {
		sr.OccurrencePeriod = &r4.Period{Start: formatTime(o.DateActivated), End: formatTime(end)}
	}
	return sr
}

func (t *Translator) ToInternal(sr *r4.ServiceRequest) *TestOrder {
	o := &TestOrder{}
	if sr == nil {
		return o
	}

	if sr.Id != nil {
		o.UUID = *sr.Id
	}
	for _, id := range sr.Identifier {
		if id.Value != nil {
			o.OrderNumber = id.Value
			break
		}
	}

	switch sr.Status {
	case r4.RequestStatusEnteredInError:
		o.Voided = true
		o.Action = fhirmodels.OrderActionNew
	case r4.RequestStatusRevoked:
		o.Action = fhirmodels.OrderActionDiscontinue
	default:
		o.Action = fhirmodels.OrderActionNew
	}
	o.Urgency = fromPriority(sr.Priority)

	if sr.Code != nil {
		o.ConceptDisplay = sr.Code.Text
		if len(sr.Code.Coding) > 0 {
			c := sr.Code.Coding[0]
			o.ConceptCode = c.Code
			if o.ConceptDisplay == nil {
				o.ConceptDisplay = c.Display
			}
		}
	}

	o.PatientUUID = fhir.ReferenceID(&sr.Subject, "Patient")
	o.OrdererUUID = fhir.ReferenceID(sr.Requester, "Practitioner")

	o.DateActivated = parseTime(sr.AuthoredOn)
	if sr.OccurrencePeriod != nil && o.DateActivated == nil {
		o.DateActivated = parseTime(sr.OccurrencePeriod.Start)
	}

	if action, ok := extension(sr.Extension, fhirmodels.OrderActionExtension); ok && action.ValueCode != nil {
		o.Action = *action.ValueCode
	}
	stopped, hasStopped := extension(sr.Extension, fhirmodels.DateStoppedExtension)
	expires, hasExpires := extension(sr.Extension, fhirmodels.AutoExpireDateExtension)
	if hasStopped || hasExpires {
		if hasStopped {
			o.DateStopped = parseTime(stopped.ValueDateTime)
		}
		if hasExpires {
			o.AutoExpireDate = parseTime(expires.ValueDateTime)
		}
	} else if sr.OccurrencePeriod != nil {
		// Resources without the date extensions only carry the effective end.
		if end := parseTime(sr.OccurrencePeriod.End); end != nil {
			if sr.Status == r4.RequestStatusRevoked {
				o.DateStopped = end
			} else {
				o.AutoExpireDate = end
			}
		}
	}
	return o
}

func toPriority(urgency *string) *r4.RequestPriority {
	if urgency == nil {
		return nil
	}
	var p r4.RequestPriority
	switch *urgency {
	case fhirmodels.UrgencyStat:
		p = r4.RequestPriorityStat
	case fhirmodels.UrgencyRoutine:
		p = r4.RequestPriorityRoutine
	default:
		return nil
	}
	return &p
}

func fromPriority(p *r4.RequestPriority) *string {
	if p == nil {
		return nil
	}
	var u string
	switch *p {
	case r4.RequestPriorityStat:
		u = fhirmodels.UrgencyStat
	case r4.RequestPriorityRoutine:
		u = fhirmodels.UrgencyRoutine
	default:
		return nil
	}
	return &u
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

func parseTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil
	}
	return &t
}

func extension(exts []r4.Extension, url string) (r4.Extension, bool) {
	for _, e := range exts {
		if e.Url == url {
			return e, true
		}
	}
	return r4.Extension{}, false
}
