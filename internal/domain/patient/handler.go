package patient

import (
	"net/http"

	"github.com/labstack/echo/v4"
	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"

	"github.com/ehr/fhir2/internal/platform/auth"
	"github.com/ehr/fhir2/internal/platform/fhir"
)

// Handler is the Patient resource provider.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(fhirGroup *echo.Group, capBuilder *fhir.CapabilityBuilder, mw ...echo.MiddlewareFunc) {
	mw = append(mw[:len(mw):len(mw)], auth.RequireScope("Patient", "read"))
	fhirGroup.GET("/Patient", h.SearchPatients, mw...)
	fhirGroup.POST("/Patient/_search", h.SearchPatients, mw...)
	fhirGroup.GET("/Patient/:id", h.GetPatient, mw...)

	if capBuilder != nil {
		capBuilder.AddResource("Patient", fhir.ReadSearchInteractions(), []fhir.SearchParam{
			{Name: "name", Type: "string", Documentation: "Any part of a given, middle or family name"},
			{Name: "gender", Type: "token"},
		})
	}
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := fhir.RequireID(c)
	if err != nil {
		return fhir.Respond(c, http.StatusBadRequest, fhir.OutcomeForError(err))
	}
	p, err := h.svc.GetPatientByUUID(c.Request().Context(), id)
	if err != nil {
		return fhir.Respond(c, http.StatusInternalServerError, fhir.ErrorOutcome(err.Error()))
	}
	if p == nil {
		return fhir.Respond(c, http.StatusNotFound, fhir.NotFoundOutcome("Patient", id))
	}
	return fhir.Respond(c, http.StatusOK, p)
}

func (h *Handler) SearchPatients(c echo.Context) error {
	patients, err := h.svc.SearchPatients(c.Request().Context(), fhir.ExtractSearchParams(c))
	if err != nil {
		return fhir.Respond(c, http.StatusInternalServerError, fhir.ErrorOutcome(err.Error()))
	}
	bundle, err := fhir.ConvertSearchResultsToBundle("Patient", patients, func(p *r4.Patient) *string { return p.Id }, c.Request().URL.String())
	if err != nil {
		return fhir.Respond(c, http.StatusInternalServerError, fhir.ErrorOutcome(err.Error()))
	}
	return fhir.Respond(c, http.StatusOK, bundle)
}
