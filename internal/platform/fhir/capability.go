package fhir

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// Interaction codes advertised in the CapabilityStatement.
const (
	InteractionRead       = "read"
	InteractionSearchType = "search-type"
)

// SearchParam describes a search parameter supported for a resource type.
type SearchParam struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Documentation string `json:"documentation,omitempty"`
}

// CapabilityConfig holds top-level server metadata for the CapabilityStatement.
type CapabilityConfig struct {
	ServerName    string
	ServerVersion string
	Description   string
	BaseURL       string
	AuthorizeURL  string
	TokenURL      string
}

type resourceEntry struct {
	resourceType string
	interactions []string
	searchParams []SearchParam
}

// CapabilityBuilder accumulates resource registrations from domain modules and
// builds the server's CapabilityStatement. Providers call AddResource while
// routes are registered so /fhir/metadata reflects what is actually served.
type CapabilityBuilder struct {
	mu        sync.RWMutex
	resources map[string]*resourceEntry
	config    CapabilityConfig
}

func NewCapabilityBuilder(cfg CapabilityConfig) *CapabilityBuilder {
	if cfg.ServerName == "" {
		cfg.ServerName = "OpenMRS FHIR2"
	}
	if cfg.Description == "" {
		cfg.Description = "FHIR R4 surface over the records system domain model"
	}
	return &CapabilityBuilder{
		resources: make(map[string]*resourceEntry),
		config:    cfg,
	}
}

// ReadSearchInteractions is the interaction set every provider in this server supports.
func ReadSearchInteractions() []string {
	return []string{InteractionRead, InteractionSearchType}
}

// AddResource registers a resource type. Registering the same type twice
// merges interactions and search parameters.
func (b *CapabilityBuilder) AddResource(resourceType string, interactions []string, searchParams []SearchParam) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.resources[resourceType]
	if !ok {
		entry = &resourceEntry{resourceType: resourceType}
		b.resources[resourceType] = entry
	}

	seen := make(map[string]bool, len(entry.interactions))
	for _, i := range entry.interactions {
		seen[i] = true
	}
	for _, i := range interactions {
		if !seen[i] {
			entry.interactions = append(entry.interactions, i)
			seen[i] = true
		}
	}

	seenParams := make(map[string]bool, len(entry.searchParams))
	for _, p := range entry.searchParams {
		seenParams[p.Name] = true
	}
	for _, p := range searchParams {
		if !seenParams[p.Name] {
			entry.searchParams = append(entry.searchParams, p)
			seenParams[p.Name] = true
		}
	}
}

// ResourceTypes returns the registered resource types in sorted order.
func (b *CapabilityBuilder) ResourceTypes() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	types := make([]string, 0, len(b.resources))
	for rt := range b.resources {
		types = append(types, rt)
	}
	sort.Strings(types)
	return types
}

// Build renders the CapabilityStatement.
func (b *CapabilityBuilder) Build() map[string]interface{} {
	types := b.ResourceTypes()

	b.mu.RLock()
	defer b.mu.RUnlock()

	resources := make([]map[string]interface{}, 0, len(types))
	for _, rt := range types {
		resources = append(resources, buildResourceEntry(b.resources[rt]))
	}

	rest := map[string]interface{}{
		"mode":     "server",
		"resource": resources,
		"security": b.buildSecurity(),
	}

	return map[string]interface{}{
		"resourceType": "CapabilityStatement",
		"status":       "active",
		"date":         time.Now().UTC().Format("2006-01-02"),
		"kind":         "instance",
		"fhirVersion":  "4.0.1",
		"format":       []string{"application/fhir+json"},
		"software": map[string]string{
			"name":    b.config.ServerName,
			"version": b.config.ServerVersion,
		},
		"implementation": map[string]string{
			"description": b.config.Description,
			"url":         b.config.BaseURL,
		},
		"rest": []map[string]interface{}{rest},
	}
}

func buildResourceEntry(entry *resourceEntry) map[string]interface{} {
	res := map[string]interface{}{
		"type":       entry.resourceType,
		"versioning": "no-version",
	}

	if len(entry.interactions) > 0 {
		interactions := make([]map[string]string, len(entry.interactions))
		for i, code := range entry.interactions {
			interactions[i] = map[string]string{"code": code}
		}
		res["interaction"] = interactions
	}

	if len(entry.searchParams) > 0 {
		params := make([]map[string]string, len(entry.searchParams))
		for i, sp := range entry.searchParams {
			p := map[string]string{
				"name": sp.Name,
				"type": sp.Type,
			}
			if sp.Documentation != "" {
				p["documentation"] = sp.Documentation
			}
			params[i] = p
		}
		res["searchParam"] = params
	}

	return res
}

// buildSecurity declares SMART on FHIR bearer auth, adding the oauth-uris
// extension when the issuer endpoints are known.
func (b *CapabilityBuilder) buildSecurity() map[string]interface{} {
	security := map[string]interface{}{
		"cors": true,
		"service": []map[string]interface{}{
			{
				"coding": []map[string]string{
					{
						"system":  "http://terminology.hl7.org/CodeSystem/restful-security-service",
						"code":    "SMART-on-FHIR",
						"display": "SMART on FHIR",
					},
				},
			},
		},
	}

	if b.config.AuthorizeURL == "" && b.config.TokenURL == "" {
		return security
	}

	uris := make([]map[string]string, 0, 2)
	if b.config.AuthorizeURL != "" {
		uris = append(uris, map[string]string{"url": "authorize", "valueUri": b.config.AuthorizeURL})
	}
	if b.config.TokenURL != "" {
		uris = append(uris, map[string]string{"url": "token", "valueUri": b.config.TokenURL})
	}
	security["extension"] = []map[string]interface{}{
		{
			"url":       "http://fhir-registry.smarthealthit.org/StructureDefinition/oauth-uris",
			"extension": uris,
		},
	}
	return security
}

// CapabilityHandler serves the CapabilityStatement.
type CapabilityHandler struct {
	builder *CapabilityBuilder
}

func NewCapabilityHandler(builder *CapabilityBuilder) *CapabilityHandler {
	return &CapabilityHandler{builder: builder}
}

func (h *CapabilityHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/metadata", h.GetMetadata)
}

// GetMetadata returns the CapabilityStatement.
func (h *CapabilityHandler) GetMetadata(c echo.Context) error {
	return Respond(c, http.StatusOK, h.builder.Build())
}
