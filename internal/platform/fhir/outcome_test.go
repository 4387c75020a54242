package fhir

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

func TestNotFoundOutcome(t *testing.T) {
	oo := NotFoundOutcome("Location", "abc-123")
	if len(oo.Issue) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(oo.Issue))
	}
	issue := oo.Issue[0]
	if issue.Severity != r4.IssueSeverityError {
		t.Errorf("expected severity error, got %v", issue.Severity)
	}
	if issue.Code != r4.IssueTypeNotFound {
		t.Errorf("expected code not-found, got %v", issue.Code)
	}
	if issue.Diagnostics == nil || *issue.Diagnostics != "Could not find Location with Id abc-123" {
		t.Errorf("unexpected diagnostics %v", issue.Diagnostics)
	}
}

func TestOperationOutcome_JSON(t *testing.T) {
	data, err := json.Marshal(ErrorOutcome("boom"))
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"resourceType":"OperationOutcome"`, `"severity":"error"`, `"code":"processing"`, `"diagnostics":"boom"`} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %s in %s", want, s)
		}
	}
}

func TestResourceNotFoundError(t *testing.T) {
	err := fmt.Errorf("read: %w", NewResourceNotFoundError("Patient", "p1"))
	if !errors.Is(err, ErrResourceNotFound) {
		t.Error("expected errors.Is to match ErrResourceNotFound")
	}
	var nf *ResourceNotFoundError
	if !errors.As(err, &nf) {
		t.Fatal("expected errors.As to find ResourceNotFoundError")
	}
	if nf.ID != "p1" || nf.ResourceType != "Patient" {
		t.Errorf("unexpected error fields %+v", nf)
	}
	if errors.Is(errors.New("other"), ErrResourceNotFound) {
		t.Error("unrelated error must not match")
	}
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewResourceNotFoundError("Location", "x"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("svc: %w", NewResourceNotFoundError("Location", "x")), http.StatusNotFound},
		{"http error", echo.NewHTTPError(http.StatusBadRequest, "bad"), http.StatusBadRequest},
		{"plain", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusForError(tt.err); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestOutcomeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code r4.IssueType
		diag string
	}{
		{"not found", NewResourceNotFoundError("ServiceRequest", "o1"), r4.IssueTypeNotFound, "Could not find ServiceRequest with Id o1"},
		{"bad request", echo.NewHTTPError(http.StatusBadRequest, "resource id is required"), r4.IssueTypeInvalid, "resource id is required"},
		{"unauthorized", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"), r4.IssueTypeLogin, "missing authorization header"},
		{"forbidden", echo.NewHTTPError(http.StatusForbidden), r4.IssueTypeForbidden, "Forbidden"},
		{"route not found", echo.ErrNotFound, r4.IssueTypeNotFound, "Not Found"},
		{"plain", errors.New("db down"), r4.IssueTypeProcessing, "db down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oo := OutcomeForError(tt.err)
			if oo.Issue[0].Code != tt.code {
				t.Errorf("expected code %v, got %v", tt.code, oo.Issue[0].Code)
			}
			if *oo.Issue[0].Diagnostics != tt.diag {
				t.Errorf("expected diagnostics %q, got %q", tt.diag, *oo.Issue[0].Diagnostics)
			}
		})
	}
}

func TestHTTPErrorHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/fhir/Location/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(NewResourceNotFoundError("Location", "x"), c)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != FHIRContentType {
		t.Errorf("expected Content-Type %q, got %q", FHIRContentType, ct)
	}
	if !strings.Contains(rec.Body.String(), "Could not find Location with Id x") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_Head(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/fhir/Location/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(errors.New("boom"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %s", rec.Body.String())
	}
}
