package composer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_Banner(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 34, 56, 789_000_000, time.UTC)
	out := New(FixedClock(at)).Compose("export type Note = {\n  id: string;\n};\n", "dtogen v1.2.0")

	want := "// =============================================\n" +
		"// AUTO-GENERATED — DO NOT EDIT\n" +
		"// Generated from OpenAPI spec on 2024-05-01T12:34:56.789Z\n" +
		"// Using dtogen v1.2.0\n" +
		"// =============================================\n" +
		"\n" +
		"/* eslint-disable */\n" +
		"\n" +
		"export type Note = {\n  id: string;\n};\n"
	assert.Equal(t, want, out.Text)
	assert.Equal(t, at, out.GeneratedAt)
	assert.Equal(t, "dtogen v1.2.0", out.GeneratorVersion)
}

func TestCompose_TimestampIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	at := time.Date(2024, 5, 1, 14, 0, 0, 0, loc)
	out := New(FixedClock(at)).Compose("x", "dtogen dev")
	assert.Contains(t, out.Text, "on 2024-05-01T12:00:00.000Z\n")
	assert.Equal(t, time.UTC, out.GeneratedAt.Location())
}

func TestCompose_DeterministicModuloTimestamp(t *testing.T) {
	a := Compose("export type A = string;\n", "dtogen dev")
	b := Compose("export type A = string;\n", "dtogen dev")

	strip := func(s string) string {
		lines := strings.Split(s, "\n")
		require.True(t, strings.HasPrefix(lines[2], "// Generated from OpenAPI spec on "))
		lines[2] = ""
		return strings.Join(lines, "\n")
	}
	assert.Equal(t, strip(a.Text), strip(b.Text))
}

func TestCompose_EmbedsDeclTextUnchanged(t *testing.T) {
	decl := "export type A = \"*/\";\n\n\n"
	out := Compose(decl, "dtogen dev")
	assert.True(t, strings.HasSuffix(out.Text, "/* eslint-disable */\n\n"+decl))
}
