package translator

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/erraggy/dtogen/dtoerrors"
	"github.com/erraggy/dtogen/internal/testutil"
)

// readArchive returns the named files of a golden archive under testdata.
func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	ar, err := txtar.ParseFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	files := make(map[string]string, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = string(f.Data)
	}
	return files
}

func TestTranslate_Golden(t *testing.T) {
	tests := []struct {
		archive string
		opts    GenerationOptions
	}{
		{archive: "notes.txtar", opts: DefaultOptions()},
		{archive: "options.txtar", opts: GenerationOptions{
			AdditionalProperties: true,
			ArrayRepresentation:  ArrayMutable,
			UnionSupport:         false,
			DateHandling:         DateAsString,
			ExportType:           false,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.archive, func(t *testing.T) {
			files := readArchive(t, tt.archive)
			got, err := NewTypeScript().Translate(context.Background(), files["spec.yaml"], tt.opts)
			require.NoError(t, err)
			if diff := cmp.Diff(files["want.ts"], got); diff != "" {
				t.Errorf("Translate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTranslate_Deterministic(t *testing.T) {
	tr := NewTypeScript()
	first, err := tr.Translate(context.Background(), testutil.NotesAPIYAML, DefaultOptions())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := tr.Translate(context.Background(), testutil.NotesAPIYAML, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestTranslate_MinimalNote(t *testing.T) {
	spec := `openapi: 3.0.0
info: {title: t, version: "1"}
components:
  schemas:
    Note:
      type: object
      required: [id, title]
      properties:
        id: {type: string}
        title: {type: string}
`
	got, err := NewTypeScript().Translate(context.Background(), spec, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, got, "export type Note = {\n  id: string;\n  title: string;\n};\n")
}

func TestTranslate_Lowering(t *testing.T) {
	spec := `openapi: 3.0.0
info: {title: t, version: "1"}
components:
  schemas:
    Status:
      type: string
      enum: [draft, published]
    Pet:
      oneOf:
        - $ref: '#/components/schemas/Cat'
        - $ref: '#/components/schemas/Dog'
    Cat:
      type: object
      properties:
        meows: {type: boolean}
    Dog:
      type: object
      properties:
        barks: {type: boolean}
    Tagged:
      allOf:
        - $ref: '#/components/schemas/Cat'
        - type: object
          properties:
            tag: {type: string}
    Dictionary:
      type: object
      additionalProperties:
        type: integer
    Anything: {}
    Legacy:
      type: object
      deprecated: true
      description: "Old */ shape"
      properties:
        "x-trace-id": {type: string, default: abc}
        born: {type: string, format: date}
    Matrix:
      type: array
      items:
        type: array
        items: {type: number}
`
	got, err := NewTypeScript().Translate(context.Background(), spec, DefaultOptions())
	require.NoError(t, err)

	for _, want := range []string{
		`export type Status = "draft" | "published";`,
		"export type Pet = Cat | Dog;",
		"export type Tagged = Cat & {\n  tag?: string;\n};",
		"export type Dictionary = { [key: string]: number };",
		"export type Anything = unknown;",
		"/**\n * Old *\\/ shape\n * @deprecated\n */\nexport type Legacy = {",
		"  /** @default abc */\n  \"x-trace-id\"?: string;",
		"  born?: Date;",
		"export type Matrix = readonly (readonly number[])[];",
		"export type paths = Record<string, never>;",
	} {
		assert.Contains(t, got, want)
	}
}

func TestTranslate_ClosedEmptyObject(t *testing.T) {
	spec := `openapi: 3.0.0
info: {title: t, version: "1"}
components:
  schemas:
    Empty:
      type: object
`
	got, err := NewTypeScript().Translate(context.Background(), spec, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, got, "export type Empty = Record<string, never>;")

	opts := DefaultOptions()
	opts.DefaultAdditionalPropertiesPolicy = true
	got, err = NewTypeScript().Translate(context.Background(), spec, opts)
	require.NoError(t, err)
	assert.Contains(t, got, "export type Empty = { [key: string]: unknown };")
}

func TestTranslate_AdditionalPropertiesPrecedence(t *testing.T) {
	spec := `openapi: 3.0.0
info: {title: t, version: "1"}
components:
  schemas:
    Strict:
      type: object
      additionalProperties: false
      properties:
        a: {type: string}
    Loose:
      type: object
      properties:
        a: {type: string}
`
	opts := DefaultOptions()
	opts.AdditionalProperties = true
	got, err := NewTypeScript().Translate(context.Background(), spec, opts)
	require.NoError(t, err)
	assert.Contains(t, got, "export type Strict = {\n  a?: string;\n};")
	assert.Contains(t, got, "export type Loose = {\n  a?: string;\n  [key: string]: unknown;\n};")
}

func TestTranslate_OAS2(t *testing.T) {
	got, err := NewTypeScript().Translate(context.Background(), testutil.PetstoreOAS2YAML, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, got, "export type Pet = {\n  id: number;\n  name?: string;\n};")
	assert.Contains(t, got, `"application/json": readonly Pet[];`)
	assert.Contains(t, got, "query?: {\n        tag?: string;\n      };")
}

func TestTranslate_InlineOperationWithoutID(t *testing.T) {
	spec := `openapi: 3.0.0
info: {title: t, version: "1"}
paths:
  /health:
    get:
      responses:
        "2XX":
          description: ok
        default:
          description: error
`
	got, err := NewTypeScript().Translate(context.Background(), spec, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, got, "  \"/health\": {\n    get: {\n      responses: {\n        /** ok */\n        \"2XX\": never;\n        /** error */\n        default: never;\n      };\n    };\n  };")
	assert.Contains(t, got, "export type operations = Record<string, never>;")
}

func TestTranslate_EscapedSchemaRef(t *testing.T) {
	spec := `openapi: 3.0.0
info: {title: t, version: "1"}
components:
  schemas:
    a/b:
      type: string
    Holder:
      type: object
      properties:
        inner:
          $ref: '#/components/schemas/a~1b'
`
	got, err := NewTypeScript().Translate(context.Background(), spec, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, got, "export type AB = string;\n")
	assert.Contains(t, got, "export type Holder = {\n  inner?: AB;\n};\n")
	assert.Contains(t, got, "    \"a/b\": AB;\n")
}

func TestTranslate_DistinctDeclarationNames(t *testing.T) {
	spec := `openapi: 3.0.0
info: {title: t, version: "1"}
components:
  schemas:
    NoteList:
      type: array
      items: {type: string}
    note-list:
      type: object
      properties:
        total: {type: integer}
    Page:
      type: object
      properties:
        list:
          $ref: '#/components/schemas/note-list'
        names:
          $ref: '#/components/schemas/NoteList'
    paths:
      type: string
`
	got, err := NewTypeScript().Translate(context.Background(), spec, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(got, "export type NoteList = "))
	assert.Contains(t, got, "export type NoteList = readonly string[];\n")
	assert.Contains(t, got, "export type NoteList2 = {\n  total?: number;\n};\n")
	assert.Contains(t, got, "export type Page = {\n  list?: NoteList2;\n  names?: NoteList;\n};\n")
	assert.Contains(t, got, "export type paths2 = string;\n")
	assert.Equal(t, 1, strings.Count(got, "export type paths =")+strings.Count(got, "export interface paths "))

	assert.Contains(t, got, "    NoteList: NoteList;\n")
	assert.Contains(t, got, "    \"note-list\": NoteList2;\n")
	assert.Contains(t, got, "    paths: paths2;\n")
}

func TestTranslate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		opts     GenerationOptions
		sentinel error
	}{
		{
			name:     "malformed yaml",
			spec:     "openapi: 3.0.0\ncomponents: [\n",
			opts:     DefaultOptions(),
			sentinel: dtoerrors.ErrParse,
		},
		{
			name: "malformed ref",
			spec: `openapi: 3.0.0
info: {title: t, version: "1"}
components:
  schemas:
    A:
      $ref: '#/components/schemas/Nope'
`,
			opts:     DefaultOptions(),
			sentinel: dtoerrors.ErrReference,
		},
		{
			name:     "invalid options",
			spec:     testutil.NotesAPIYAML,
			opts:     GenerationOptions{ArrayRepresentation: "frozen", DateHandling: DateAsDate},
			sentinel: dtoerrors.ErrConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTypeScript(WithSourceName("api.yaml")).Translate(context.Background(), tt.spec, tt.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, dtoerrors.ErrTranslation), "want TranslationError, got %v", err)
			assert.True(t, errors.Is(err, tt.sentinel), "want %v in chain, got %v", tt.sentinel, err)

			var te *dtoerrors.TranslationError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, "api.yaml", te.Source)
			assert.NotNil(t, te.Cause)
		})
	}
}

func TestTranslate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewTypeScript().Translate(ctx, testutil.NotesAPIYAML, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, errors.Is(err, dtoerrors.ErrTranslation))
}

func TestTranslate_SchemaValidationToggle(t *testing.T) {
	tr := NewTypeScript(WithSchemaValidation(false))
	assert.False(t, tr.ValidateSchemas)
	got, err := tr.Translate(context.Background(), testutil.NotesAPIYAML, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "export type CreateNoteRequest"))
}
