package fhir

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// NewOperationOutcome builds an OperationOutcome carrying a single issue.
func NewOperationOutcome(severity r4.IssueSeverity, code r4.IssueType, diagnostics string) *r4.OperationOutcome {
	return &r4.OperationOutcome{
		Issue: []r4.OperationOutcomeIssue{
			{
				Severity:    severity,
				Code:        code,
				Diagnostics: to.Ptr(diagnostics),
			},
		},
	}
}

func ErrorOutcome(diagnostics string) *r4.OperationOutcome {
	return NewOperationOutcome(r4.IssueSeverityError, r4.IssueTypeProcessing, diagnostics)
}

func InvalidOutcome(diagnostics string) *r4.OperationOutcome {
	return NewOperationOutcome(r4.IssueSeverityError, r4.IssueTypeInvalid, diagnostics)
}

func NotFoundOutcome(resourceType, id string) *r4.OperationOutcome {
	return NewOperationOutcome(r4.IssueSeverityError, r4.IssueTypeNotFound,
		NewResourceNotFoundError(resourceType, id).Error())
}

// StatusForError maps an error to the HTTP status a provider should answer with.
func StatusForError(err error) int {
	if errors.Is(err, ErrResourceNotFound) {
		return http.StatusNotFound
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

// OutcomeForError renders err as an OperationOutcome whose issue type matches
// StatusForError.
func OutcomeForError(err error) *r4.OperationOutcome {
	var nf *ResourceNotFoundError
	if errors.As(err, &nf) {
		return NotFoundOutcome(nf.ResourceType, nf.ID)
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok {
			msg = s
		}
		switch {
		case he.Code == http.StatusNotFound:
			return NewOperationOutcome(r4.IssueSeverityError, r4.IssueTypeNotFound, msg)
		case he.Code == http.StatusUnauthorized:
			return NewOperationOutcome(r4.IssueSeverityError, r4.IssueTypeLogin, msg)
		case he.Code == http.StatusForbidden:
			return NewOperationOutcome(r4.IssueSeverityError, r4.IssueTypeForbidden, msg)
		case he.Code < http.StatusInternalServerError:
			return InvalidOutcome(msg)
		}
		return ErrorOutcome(msg)
	}
	return ErrorOutcome(err.Error())
}

// Respond writes v as application/fhir+json.
func Respond(c echo.Context, status int, v interface{}) error {
	c.Response().Header().Set(echo.HeaderContentType, FHIRContentType)
	return c.JSON(status, v)
}

// HTTPErrorHandler renders every error that escapes a handler as an
// OperationOutcome so FHIR clients never receive echo's default error body.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := StatusForError(err)
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = Respond(c, status, OutcomeForError(err))
}
