// Package schemautil provides utilities for working with OpenAPI schema types.
//
// This package centralizes type assertion patterns for OAS version-specific fields,
// particularly handling the differences between OAS 2.0/3.0 (string types) and
// OAS 3.1+ (array types for nullable support).
package schemautil

import "github.com/erraggy/dtogen/parser"

// GetSchemaTypes returns the type(s) from a schema, handling both
// string (OAS 2.0/3.0) and []any (OAS 3.1+) representations.
//
// Examples:
//   - OAS 3.0: {"type": "string"} returns ["string"]
//   - OAS 3.1: {"type": ["string", "null"]} returns ["string", "null"]
func GetSchemaTypes(schema *parser.Schema) []string {
	if schema == nil {
		return nil
	}
	switch t := schema.Type.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		result := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok {
				result = append(result, s)
			}
		}
		return result
	case []string:
		return t
	}
	return nil
}

// NonNullTypes returns the declared types of schema without "null".
// When no type is declared it falls back to the type implied by the
// schema's keywords (see InferType).
func NonNullTypes(schema *parser.Schema) []string {
	var out []string
	for _, t := range GetSchemaTypes(schema) {
		if t != "null" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		if inferred := InferType(schema); inferred != "" {
			out = append(out, inferred)
		}
	}
	return out
}

// InferType returns the type implied by a schema without an explicit type:
// "object" when it declares properties or additionalProperties, "array"
// when it declares items, and "" otherwise.
func InferType(schema *parser.Schema) string {
	if schema == nil {
		return ""
	}
	switch {
	case len(schema.Properties) > 0 || schema.AdditionalProperties != nil:
		return "object"
	case schema.Items != nil:
		return "array"
	}
	return ""
}

// IsNullable checks if the schema allows null values, either through
// `nullable: true` (OAS 3.0) or a "null" entry in the type array (OAS 3.1+).
func IsNullable(schema *parser.Schema) bool {
	if schema == nil {
		return false
	}
	if schema.Nullable {
		return true
	}
	return HasType(schema, "null")
}

// HasType checks if the schema includes the specified type.
func HasType(schema *parser.Schema, targetType string) bool {
	for _, t := range GetSchemaTypes(schema) {
		if t == targetType {
			return true
		}
	}
	return false
}

// IsObject reports whether the schema describes an object, declared or inferred.
func IsObject(schema *parser.Schema) bool {
	types := NonNullTypes(schema)
	return len(types) == 1 && types[0] == "object"
}

// IsComposition reports whether the schema is built from allOf, anyOf, or oneOf.
func IsComposition(schema *parser.Schema) bool {
	return schema != nil && (len(schema.AllOf) > 0 || len(schema.AnyOf) > 0 || len(schema.OneOf) > 0)
}
