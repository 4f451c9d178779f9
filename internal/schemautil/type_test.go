package schemautil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/dtogen/parser"
)

func TestGetSchemaTypes(t *testing.T) {
	tests := []struct {
		name     string
		schema   *parser.Schema
		expected []string
	}{
		{name: "nil schema", schema: nil, expected: nil},
		{name: "empty type", schema: &parser.Schema{Type: ""}, expected: nil},
		{name: "string type", schema: &parser.Schema{Type: "string"}, expected: []string{"string"}},
		{name: "array of any (OAS 3.1 style)", schema: &parser.Schema{Type: []any{"string", "null"}}, expected: []string{"string", "null"}},
		{name: "array of strings", schema: &parser.Schema{Type: []string{"string", "null"}}, expected: []string{"string", "null"}},
		{name: "array with non-string values filtered", schema: &parser.Schema{Type: []any{"string", 123, "null"}}, expected: []string{"string", "null"}},
		{name: "unsupported type returns nil", schema: &parser.Schema{Type: 123}, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSchemaTypes(tt.schema))
		})
	}
}

func TestNonNullTypes(t *testing.T) {
	assert.Equal(t, []string{"string"}, NonNullTypes(&parser.Schema{Type: []any{"string", "null"}}))
	assert.Equal(t, []string{"object"}, NonNullTypes(&parser.Schema{
		Properties: parser.Properties{{Name: "a", Schema: &parser.Schema{Type: "string"}}},
	}))
	assert.Equal(t, []string{"array"}, NonNullTypes(&parser.Schema{Items: &parser.Schema{}}))
	assert.Nil(t, NonNullTypes(&parser.Schema{}))
}

func TestIsNullable(t *testing.T) {
	assert.False(t, IsNullable(nil))
	assert.False(t, IsNullable(&parser.Schema{Type: "string"}))
	assert.True(t, IsNullable(&parser.Schema{Type: "string", Nullable: true}))
	assert.True(t, IsNullable(&parser.Schema{Type: []any{"string", "null"}}))
}

func TestIsObject(t *testing.T) {
	assert.True(t, IsObject(&parser.Schema{Type: "object"}))
	assert.True(t, IsObject(&parser.Schema{AdditionalProperties: &parser.AdditionalProperties{Allowed: parser.BoolPtr(true)}}))
	assert.False(t, IsObject(&parser.Schema{Type: "string"}))
	assert.False(t, IsObject(&parser.Schema{Type: []any{"object", "string"}}))
}

func TestIsComposition(t *testing.T) {
	assert.False(t, IsComposition(nil))
	assert.False(t, IsComposition(&parser.Schema{Type: "object"}))
	assert.True(t, IsComposition(&parser.Schema{OneOf: []*parser.Schema{{Type: "string"}}}))
}
