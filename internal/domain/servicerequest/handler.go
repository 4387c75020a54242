package servicerequest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"

	"github.com/ehr/fhir2/internal/platform/auth"
	"github.com/ehr/fhir2/internal/platform/fhir"
)

const (
	resourceType = "ServiceRequest"
	// notFoundLabel is the resource name used in not-found diagnostics.
	notFoundLabel = "Service Request"
)

// Handler is the ServiceRequest resource provider. Search takes no
// criteria and returns every order.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(fhirGroup *echo.Group, capBuilder *fhir.CapabilityBuilder, mw ...echo.MiddlewareFunc) {
	mw = append(mw[:len(mw):len(mw)], auth.RequireScope(resourceType, "read"))
	fhirGroup.GET("/ServiceRequest", h.GetAllServiceRequests, mw...)
	fhirGroup.POST("/ServiceRequest/_search", h.GetAllServiceRequests, mw...)
	fhirGroup.GET("/ServiceRequest/:id", h.GetServiceRequest, mw...)

	if capBuilder != nil {
		capBuilder.AddResource(resourceType, fhir.ReadSearchInteractions(), nil)
	}
}

func (h *Handler) GetServiceRequest(c echo.Context) error {
	id, err := fhir.RequireID(c)
	if err != nil {
		return fhir.Respond(c, http.StatusBadRequest, fhir.OutcomeForError(err))
	}
	sr, err := h.svc.GetServiceRequestByUUID(c.Request().Context(), id)
	if err != nil {
		return fhir.Respond(c, http.StatusInternalServerError, fhir.ErrorOutcome(err.Error()))
	}
	if sr == nil {
		return fhir.Respond(c, http.StatusNotFound, fhir.NotFoundOutcome(notFoundLabel, id))
	}
	return fhir.Respond(c, http.StatusOK, sr)
}

func (h *Handler) GetAllServiceRequests(c echo.Context) error {
	srs, err := h.svc.GetAllServiceRequests(c.Request().Context())
	if err != nil {
		return fhir.Respond(c, http.StatusInternalServerError, fhir.ErrorOutcome(err.Error()))
	}
	bundle, err := fhir.ConvertSearchResultsToBundle(resourceType, srs, func(sr *r4.ServiceRequest) *string { return sr.Id }, c.Request().URL.String())
	if err != nil {
		return fhir.Respond(c, http.StatusInternalServerError, fhir.ErrorOutcome(err.Error()))
	}
	return fhir.Respond(c, http.StatusOK, bundle)
}
