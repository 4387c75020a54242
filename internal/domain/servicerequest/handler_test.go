package servicerequest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ehr/fhir2/internal/platform/auth"
	"github.com/ehr/fhir2/internal/platform/fhir"
)

func newTestHandler(repo Repository) (*Handler, *echo.Echo) {
	return NewHandler(newTestService(repo)), echo.New()
}

func TestHandler_GetServiceRequest(t *testing.T) {
	h, e := newTestHandler(newMockRepo(seedOrders()...))

	req := httptest.NewRequest(http.MethodGet, "/fhir/ServiceRequest/ord-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ord-1")

	if err := h.GetServiceRequest(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["resourceType"] != "ServiceRequest" || body["id"] != "ord-1" {
		t.Errorf("unexpected body %v", body)
	}
	if body["intent"] != "order" || body["status"] != "active" {
		t.Errorf("unexpected intent/status %v/%v", body["intent"], body["status"])
	}
}

func TestHandler_GetServiceRequest_NotFound(t *testing.T) {
	h, e := newTestHandler(newMockRepo())

	req := httptest.NewRequest(http.MethodGet, "/fhir/ServiceRequest/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.GetServiceRequest(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Could not find Service Request with Id missing") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestHandler_GetServiceRequest_MissingID(t *testing.T) {
	h, e := newTestHandler(newMockRepo())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/fhir/ServiceRequest/", nil), rec)

	if err := h.GetServiceRequest(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_GetAllServiceRequests(t *testing.T) {
	h, e := newTestHandler(newMockRepo(seedOrders()...))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := context.WithValue(c.Request().Context(), auth.UserScopesKey, []string{"ServiceRequest.read"})
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})
	capBuilder := fhir.NewCapabilityBuilder(fhir.CapabilityConfig{})
	h.RegisterRoutes(e.Group("/fhir"), capBuilder)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fhir/ServiceRequest", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var bundle map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &bundle)
	if bundle["type"] != "searchset" || bundle["total"] != float64(2) {
		t.Errorf("unexpected bundle %v", bundle)
	}
	entries := bundle["entry"].([]interface{})
	if entries[1].(map[string]interface{})["fullUrl"] != "ServiceRequest/ord-2" {
		t.Errorf("unexpected entry %v", entries[1])
	}

	if types := capBuilder.ResourceTypes(); len(types) != 1 || types[0] != "ServiceRequest" {
		t.Errorf("unexpected capability types %v", types)
	}
}
