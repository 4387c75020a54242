package location

import (
	"net/http"

	"github.com/labstack/echo/v4"
	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"

	"github.com/ehr/fhir2/internal/platform/auth"
	"github.com/ehr/fhir2/internal/platform/fhir"
)

const resourceType = "Location"

// Handler is the Location resource provider.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes adds the read and search routes. mw and the scope check are
// attached per route so unknown paths under the group still fall through to 404.
func (h *Handler) RegisterRoutes(fhirGroup *echo.Group, capBuilder *fhir.CapabilityBuilder, mw ...echo.MiddlewareFunc) {
	mw = append(mw[:len(mw):len(mw)], auth.RequireScope(resourceType, "read"))
	fhirGroup.GET("/Location", h.SearchLocations, mw...)
	fhirGroup.POST("/Location/_search", h.SearchLocations, mw...)
	fhirGroup.GET("/Location/:id", h.GetLocation, mw...)

	if capBuilder != nil {
		capBuilder.AddResource(resourceType, fhir.ReadSearchInteractions(), []fhir.SearchParam{
			{Name: "name", Type: "string", Documentation: "Location name, prefix match unless :exact or :contains"},
		})
	}
}

func (h *Handler) GetLocation(c echo.Context) error {
	id, err := fhir.RequireID(c)
	if err != nil {
		return fhir.Respond(c, http.StatusBadRequest, fhir.OutcomeForError(err))
	}
	loc, err := h.svc.GetLocationByUUID(c.Request().Context(), id)
	if err != nil {
		return fhir.Respond(c, http.StatusInternalServerError, fhir.ErrorOutcome(err.Error()))
	}
	if loc == nil {
		return fhir.Respond(c, http.StatusNotFound, fhir.NotFoundOutcome(resourceType, id))
	}
	return fhir.Respond(c, http.StatusOK, loc)
}

func (h *Handler) SearchLocations(c echo.Context) error {
	locs, err := h.svc.SearchLocations(c.Request().Context(), fhir.ExtractSearchParams(c))
	if err != nil {
		return fhir.Respond(c, http.StatusInternalServerError, fhir.ErrorOutcome(err.Error()))
	}
	bundle, err := fhir.ConvertSearchResultsToBundle(resourceType, locs, func(l *r4.Location) *string { return l.Id }, c.Request().URL.String())
	if err != nil {
		return fhir.Respond(c, http.StatusInternalServerError, fhir.ErrorOutcome(err.Error()))
	}
	return fhir.Respond(c, http.StatusOK, bundle)
}
