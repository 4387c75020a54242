package fhir

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// FHIRContentType is the FHIR JSON content type with charset.
const FHIRContentType = "application/fhir+json; charset=utf-8"

// ContentNegotiationMiddleware serves every resource as application/fhir+json.
// The _format query parameter wins over the Accept header; XML and unknown
// formats are answered with 406 and an OperationOutcome.
func ContentNegotiationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if format := c.QueryParam("_format"); format != "" {
				switch {
				case isXMLFormat(format):
					return notAcceptable(c, "XML format is not supported. Use application/fhir+json.")
				case !isJSONFormat(format):
					return notAcceptable(c, "Unsupported _format value: "+format)
				}
			} else if accept := c.Request().Header.Get("Accept"); accept != "" && !negotiateAccept(accept) {
				return notAcceptable(c, "Accept header does not include a supported FHIR content type. Use application/fhir+json.")
			}

			c.Response().Header().Set(echo.HeaderContentType, FHIRContentType)
			return next(c)
		}
	}
}

func notAcceptable(c echo.Context, msg string) error {
	return Respond(c, http.StatusNotAcceptable, InvalidOutcome(msg))
}

// normalizeFormat lowercases the value and restores a '+' that query decoding
// turned into a space ("application/fhir json").
func normalizeFormat(raw string) string {
	f := strings.TrimSpace(strings.ToLower(raw))
	f = strings.ReplaceAll(f, "fhir json", "fhir+json")
	return strings.ReplaceAll(f, "fhir xml", "fhir+xml")
}

func isJSONFormat(format string) bool {
	switch normalizeFormat(format) {
	case "json", "application/json", "application/fhir+json":
		return true
	}
	return false
}

func isXMLFormat(format string) bool {
	switch normalizeFormat(format) {
	case "xml", "application/xml", "application/fhir+xml":
		return true
	}
	return false
}

// negotiateAccept reports whether any media type in the Accept header is JSON
// compatible. Quality parameters are ignored.
func negotiateAccept(accept string) bool {
	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		switch mediaType {
		case "application/fhir+json", "application/json", "json", "*/*":
			return true
		}
	}
	return false
}
