package fhir

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

// SearchModifier is a FHIR search parameter modifier (the part after ':').
type SearchModifier string

const (
	ModifierExact    SearchModifier = "exact"
	ModifierContains SearchModifier = "contains"
)

// ParseParamModifier splits a parameter name from its modifier.
// Examples: "name:exact" -> ("name", "exact"), "gender" -> ("gender", "")
func ParseParamModifier(paramName string) (string, SearchModifier) {
	parts := strings.SplitN(paramName, ":", 2)
	if len(parts) == 2 {
		return parts[0], SearchModifier(parts[1])
	}
	return paramName, ""
}

// StringSearchClause returns a SQL clause for a FHIR string parameter.
// Without modifier the match is a case-insensitive prefix match.
func StringSearchClause(column string, value string, modifier SearchModifier, argIdx int) (string, []interface{}, int) {
	switch modifier {
	case ModifierExact:
		return fmt.Sprintf("%s = $%d", column, argIdx), []interface{}{value}, argIdx + 1
	case ModifierContains:
		return fmt.Sprintf("%s ILIKE $%d", column, argIdx), []interface{}{"%" + value + "%"}, argIdx + 1
	default:
		return fmt.Sprintf("%s ILIKE $%d", column, argIdx), []interface{}{value + "%"}, argIdx + 1
	}
}

// ExtractSearchParams extracts FHIR search parameters from the query string and,
// for POST _search, the form body. Control parameters (leading '_') are skipped.
func ExtractSearchParams(c echo.Context) map[string]string {
	params := map[string]string{}
	for k, v := range c.QueryParams() {
		if len(v) == 0 || strings.HasPrefix(k, "_") {
			continue
		}
		params[k] = v[0]
	}
	if form, err := c.FormParams(); err == nil {
		for k, v := range form {
			if len(v) == 0 || strings.HasPrefix(k, "_") {
				continue
			}
			params[k] = v[0]
		}
	}
	return params
}

// RequireID returns the :id path parameter or a 400 error when it is empty.
func RequireID(c echo.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", echo.NewHTTPError(400, "resource id is required")
	}
	return id, nil
}
