package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/dtogen/dtoerrors"
	"github.com/erraggy/dtogen/internal/testutil"
)

func TestValidateSchemas_Valid(t *testing.T) {
	for name, spec := range map[string]string{
		"oas3": testutil.NotesAPIYAML,
		"oas2": testutil.PetstoreOAS2YAML,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseWithOptions(WithBytes([]byte(spec)), WithSchemaValidation(true))
			require.NoError(t, err)
		})
	}
}

func TestValidateSchemas_OAS31(t *testing.T) {
	data := []byte(`openapi: 3.1.0
info: {title: t, version: "1"}
components:
  schemas:
    Id:
      type: [string, "null"]
    Wrapper:
      type: object
      properties:
        id:
          $ref: '#/components/schemas/Id'
`)
	_, err := ParseWithOptions(WithBytes(data), WithSchemaValidation(true))
	require.NoError(t, err)
}

func TestValidateSchemas_UnresolvableRef(t *testing.T) {
	data := []byte(`openapi: 3.0.0
info: {title: t, version: "1"}
components:
  schemas:
    Broken:
      type: object
      properties:
        other:
          $ref: '#/components/schemas/Missing'
`)
	_, err := ParseWithOptions(WithBytes(data), WithSourcePath("broken.yaml"), WithSchemaValidation(true))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dtoerrors.ErrParse))
	assert.Contains(t, err.Error(), `schema "Broken"`)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestValidateSchemas_NilResult(t *testing.T) {
	err := ValidateSchemas(nil)
	require.Error(t, err)
}

func TestEscapePointer(t *testing.T) {
	assert.Equal(t, "a~1b~0c", escapePointer("a/b~c"))
}
