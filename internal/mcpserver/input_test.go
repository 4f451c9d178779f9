package mcpserver

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/dtogen/internal/testutil"
	"github.com/erraggy/dtogen/translator"
)

func boolPtr(b bool) *bool { return &b }

func TestSpecInput_Load(t *testing.T) {
	t.Run("content", func(t *testing.T) {
		text, source, err := specInput{Content: testutil.NotesAPIYAML}.load()
		require.NoError(t, err)
		assert.Equal(t, testutil.NotesAPIYAML, text)
		assert.Equal(t, "<content>", source)
	})

	t.Run("file", func(t *testing.T) {
		path := testutil.WriteNotesSpec(t, t.TempDir())
		text, source, err := specInput{File: path}.load()
		require.NoError(t, err)
		assert.Equal(t, testutil.NotesAPIYAML, text)
		assert.Equal(t, path, source)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := specInput{File: filepath.Join(t.TempDir(), "nope.yaml")}.load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope.yaml")
	})

	t.Run("neither", func(t *testing.T) {
		_, _, err := specInput{}.load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must specify an input source (use file or content)")
	})

	t.Run("both", func(t *testing.T) {
		_, _, err := specInput{File: "a.yaml", Content: "openapi: 3.0.0"}.load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "got file and content")
	})

	t.Run("content too large", func(t *testing.T) {
		saved := cfg.MaxContentSize
		cfg.MaxContentSize = 8
		t.Cleanup(func() { cfg.MaxContentSize = saved })

		_, _, err := specInput{Content: strings.Repeat("x", 9)}.load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeding the 8 byte limit")
	})
}

func TestOptionsInput_ToOptions(t *testing.T) {
	opts, err := optionsInput{}.toOptions()
	require.NoError(t, err)
	assert.Equal(t, translator.DefaultOptions(), opts)

	opts, err = optionsInput{
		Array:                       "mutable",
		Dates:                       "stringType",
		AdditionalProperties:        boolPtr(true),
		DefaultAdditionalProperties: boolPtr(true),
		Union:                       boolPtr(false),
		ExportType:                  boolPtr(false),
	}.toOptions()
	require.NoError(t, err)
	assert.Equal(t, translator.GenerationOptions{
		AdditionalProperties:              true,
		ArrayRepresentation:               translator.ArrayMutable,
		DefaultAdditionalPropertiesPolicy: true,
		UnionSupport:                      false,
		DateHandling:                      translator.DateAsString,
		ExportType:                        false,
	}, opts)

	_, err = optionsInput{Array: "frozen"}.toOptions()
	assert.Error(t, err)
	_, err = optionsInput{Dates: "epoch"}.toOptions()
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	c := loadConfig(map[string]string{})
	assert.True(t, c.AllowWrites)
	assert.Equal(t, 10<<20, c.MaxContentSize)
	assert.Equal(t, 30*time.Second, c.Timeout)

	c = loadConfig(map[string]string{
		"DTOGEN_MCP_ALLOW_WRITES": "false",
		"DTOGEN_MCP_TIMEOUT":      "2s",
	})
	assert.False(t, c.AllowWrites)
	assert.Equal(t, 2*time.Second, c.Timeout)

	c = loadConfig(map[string]string{"DTOGEN_MCP_TIMEOUT": "soon"})
	assert.Equal(t, 30*time.Second, c.Timeout)
}
