package translator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/dtogen/dtoerrors"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.False(t, opts.AdditionalProperties)
	assert.Equal(t, ArrayReadonly, opts.ArrayRepresentation)
	assert.False(t, opts.DefaultAdditionalPropertiesPolicy)
	assert.True(t, opts.UnionSupport)
	assert.Equal(t, DateAsDate, opts.DateHandling)
	assert.True(t, opts.ExportType)
	require.NoError(t, opts.Validate())
}

func TestGenerationOptions_Validate(t *testing.T) {
	opts := DefaultOptions()
	opts.DateHandling = "epoch"
	err := opts.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, dtoerrors.ErrConfig))

	var ce *dtoerrors.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "dateHandling", ce.Option)

	opts = DefaultOptions()
	opts.ArrayRepresentation = ""
	require.Error(t, opts.Validate())
}

func TestParseArrayRepresentation(t *testing.T) {
	got, err := ParseArrayRepresentation("Readonly")
	require.NoError(t, err)
	assert.Equal(t, ArrayReadonly, got)

	got, err = ParseArrayRepresentation("mutable")
	require.NoError(t, err)
	assert.Equal(t, ArrayMutable, got)

	_, err = ParseArrayRepresentation("frozen")
	require.Error(t, err)
}

func TestParseDateHandling(t *testing.T) {
	for in, want := range map[string]DateHandling{
		"dateType":   DateAsDate,
		"date":       DateAsDate,
		"stringType": DateAsString,
		"STRING":     DateAsString,
	} {
		got, err := ParseDateHandling(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDateHandling("unix")
	require.Error(t, err)
}
