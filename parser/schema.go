package parser

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Schema represents the subset of a JSON Schema that affects the shape of a
// generated type declaration. Validation-only keywords (minLength, pattern,
// maximum, ...) are not decoded.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example     any    `yaml:"example,omitempty" json:"example,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Type is a string (OAS 2.0/3.0) or a list of strings (OAS 3.1+)
	Type   any    `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Const  any    `yaml:"const,omitempty" json:"const,omitempty"`

	// Arrays
	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`

	// Objects
	Properties           Properties            `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties *AdditionalProperties `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	Required             []string              `yaml:"required,omitempty" json:"required,omitempty"`

	// Composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`

	// OAS specific
	Nullable  bool `yaml:"nullable,omitempty" json:"nullable,omitempty"` // OAS 3.0 only
	ReadOnly  bool `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly bool `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
}

// IsRequired reports whether name is listed in the schema's required array.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Property is a single named object property.
type Property struct {
	Name   string
	Schema *Schema
}

// Properties is an ordered list of object properties.
// Order follows the source document.
type Properties []Property

// Get returns the schema of the named property, or nil.
func (p Properties) Get(name string) *Schema {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Schema
		}
	}
	return nil
}

// Names returns the property names in source order.
func (p Properties) Names() []string {
	names := make([]string, 0, len(p))
	for _, prop := range p {
		names = append(names, prop.Name)
	}
	return names
}

// UnmarshalYAML decodes a properties mapping while keeping key order.
func (p *Properties) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("properties must be a mapping, got %s", nodeKindName(value.Kind))
	}

	props := make(Properties, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		var schema Schema
		if err := value.Content[i+1].Decode(&schema); err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}
		props = append(props, Property{Name: key, Schema: &schema})
	}
	*p = props
	return nil
}

// AdditionalProperties holds the value of the additionalProperties keyword,
// which is either a boolean or a schema.
type AdditionalProperties struct {
	// Allowed is set when the keyword is a boolean
	Allowed *bool
	// Schema is set when the keyword is a schema
	Schema *Schema
}

// UnmarshalYAML decodes either form of additionalProperties.
func (a *AdditionalProperties) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err != nil {
			return fmt.Errorf("additionalProperties must be a boolean or a schema: %w", err)
		}
		a.Allowed = &b
		return nil
	}

	var schema Schema
	if err := value.Decode(&schema); err != nil {
		return fmt.Errorf("additionalProperties: %w", err)
	}
	a.Schema = &schema
	return nil
}

// IsClosed reports whether additional properties are explicitly forbidden.
func (a *AdditionalProperties) IsClosed() bool {
	return a != nil && a.Allowed != nil && !*a.Allowed
}

// IsOpen reports whether additional properties are explicitly allowed,
// either by `true` or by a schema.
func (a *AdditionalProperties) IsOpen() bool {
	if a == nil {
		return false
	}
	if a.Schema != nil {
		return true
	}
	return a.Allowed != nil && *a.Allowed
}

// BoolPtr returns a pointer to b. Handy for building AdditionalProperties in code.
func BoolPtr(b bool) *bool {
	return &b
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
