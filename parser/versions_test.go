package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want OASVersion
	}{
		{"2.0", OASVersion20},
		{"3.0.0", OASVersion30},
		{"3.0.3", OASVersion30},
		{"3.1.0", OASVersion31},
		{"3.2.0", OASVersion32},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "3", "3.x", "1.0", "4.0.0"} {
		_, err := ParseVersion(bad)
		assert.Error(t, err, "ParseVersion(%q)", bad)
	}
}

func TestOASVersion_Helpers(t *testing.T) {
	assert.Equal(t, "3.1", OASVersion31.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.True(t, OASVersion30.IsOAS3())
	assert.False(t, OASVersion20.IsOAS3())
	assert.True(t, OASVersion31.UsesTypeArrays())
	assert.False(t, OASVersion30.UsesTypeArrays())
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "2.0", versionString(2.0))
	assert.Equal(t, "3.0", versionString(3))
	assert.Equal(t, "3.0.3", versionString("3.0.3"))
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, DetectFormat("a.json", nil))
	assert.Equal(t, SourceFormatYAML, DetectFormat("a.YML", nil))
	assert.Equal(t, SourceFormatJSON, DetectFormat("", []byte("  {\"a\":1}")))
	assert.Equal(t, SourceFormatYAML, DetectFormat("", []byte("a: 1")))
	assert.Equal(t, SourceFormatUnknown, DetectFormat("", []byte("  \n")))
}
