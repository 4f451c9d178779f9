package parser

import (
	"sort"
	"strings"
)

// Document is the decoded subset of an OAS 2.0 or 3.x document.
type Document struct {
	// OpenAPI is the "openapi" field of a 3.x document
	OpenAPI string `yaml:"openapi,omitempty" json:"openapi,omitempty"`
	// Swagger is the "swagger" field of a 2.0 document
	Swagger string `yaml:"swagger,omitempty" json:"swagger,omitempty"`

	Info       *Info                `yaml:"info,omitempty" json:"info,omitempty"`
	Paths      map[string]*PathItem `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components *Components          `yaml:"components,omitempty" json:"components,omitempty"`

	// OAS 2.0 reusable objects
	Definitions map[string]*Schema    `yaml:"definitions,omitempty" json:"definitions,omitempty"`
	Parameters  map[string]*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Responses   map[string]*Response  `yaml:"responses,omitempty" json:"responses,omitempty"`

	// OASVersion is the detected version family
	OASVersion OASVersion `yaml:"-" json:"-"`
}

// Info provides metadata about the API
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
}

// Components holds reusable objects (OAS 3.0+)
type Components struct {
	Schemas       map[string]*Schema      `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses     map[string]*Response    `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters    map[string]*Parameter   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBodies map[string]*RequestBody `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
}

// Schemas returns the named schemas of the document: components.schemas for
// OAS 3.x and definitions for OAS 2.0.
func (d *Document) Schemas() map[string]*Schema {
	if d == nil {
		return nil
	}
	if d.OASVersion == OASVersion20 {
		return d.Definitions
	}
	if d.Components == nil {
		return nil
	}
	return d.Components.Schemas
}

// SchemaNames returns the named schema keys sorted alphabetically.
func (d *Document) SchemaNames() []string {
	schemas := d.Schemas()
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SchemaRefPrefix returns the local JSON pointer prefix for named schemas.
func (d *Document) SchemaRefPrefix() string {
	if d != nil && d.OASVersion == OASVersion20 {
		return "#/definitions/"
	}
	return "#/components/schemas/"
}

// SchemaNameFromRef extracts the schema name from a local $ref.
// The second return value is false when ref does not point into the named
// schemas of this document.
func (d *Document) SchemaNameFromRef(ref string) (string, bool) {
	prefix := d.SchemaRefPrefix()
	if !strings.HasPrefix(ref, prefix) {
		return "", false
	}
	token := strings.TrimPrefix(ref, prefix)
	if token == "" || strings.Contains(token, "/") {
		return "", false
	}
	return unescapePointer(token), true
}

// LookupSchemaRef resolves a local schema $ref to its schema.
func (d *Document) LookupSchemaRef(ref string) (*Schema, bool) {
	name, ok := d.SchemaNameFromRef(ref)
	if !ok {
		return nil, false
	}
	s, ok := d.Schemas()[name]
	return s, ok && s != nil
}

// LookupResponse resolves a response $ref (#/components/responses/X or #/responses/X).
func (d *Document) LookupResponse(ref string) (*Response, bool) {
	var m map[string]*Response
	var prefix string
	if d.OASVersion == OASVersion20 {
		m, prefix = d.Responses, "#/responses/"
	} else if d.Components != nil {
		m, prefix = d.Components.Responses, "#/components/responses/"
	}
	return lookupRef(m, prefix, ref)
}

// LookupParameter resolves a parameter $ref (#/components/parameters/X or #/parameters/X).
func (d *Document) LookupParameter(ref string) (*Parameter, bool) {
	var m map[string]*Parameter
	var prefix string
	if d.OASVersion == OASVersion20 {
		m, prefix = d.Parameters, "#/parameters/"
	} else if d.Components != nil {
		m, prefix = d.Components.Parameters, "#/components/parameters/"
	}
	return lookupRef(m, prefix, ref)
}

// LookupRequestBody resolves a request body $ref (#/components/requestBodies/X).
func (d *Document) LookupRequestBody(ref string) (*RequestBody, bool) {
	if d.Components == nil {
		return nil, false
	}
	return lookupRef(d.Components.RequestBodies, "#/components/requestBodies/", ref)
}

func lookupRef[T any](m map[string]*T, prefix, ref string) (*T, bool) {
	if prefix == "" || !strings.HasPrefix(ref, prefix) {
		return nil, false
	}
	v, ok := m[unescapePointer(strings.TrimPrefix(ref, prefix))]
	return v, ok && v != nil
}

// unescapePointer decodes a JSON pointer token (RFC 6901).
func unescapePointer(s string) string {
	s = strings.ReplaceAll(s, "~1", "/")
	return strings.ReplaceAll(s, "~0", "~")
}
