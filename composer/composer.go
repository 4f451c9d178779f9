// Package composer prefixes generated declarations with a provenance banner.
//
// The banner records when and by which generator version the output was
// produced. Apart from the timestamp, composition is deterministic.
package composer

import (
	"strings"
	"time"
)

// TimestampFormat is the layout of the banner timestamp: ISO-8601 in UTC
// with millisecond precision, e.g. 2024-05-01T12:34:56.789Z.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

const bannerRule = "// ============================================="

// Clock supplies the generation timestamp.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Useful for reproducible output.
type FixedClock time.Time

// Now implements Clock.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// ComposedOutput is the banner-prefixed declaration text.
type ComposedOutput struct {
	// Text is the full file content
	Text string
	// GeneratedAt is the instant recorded in the banner (UTC)
	GeneratedAt time.Time
	// GeneratorVersion is the version string recorded in the banner
	GeneratorVersion string
}

// Composer builds ComposedOutput values.
type Composer struct {
	// Clock supplies the banner timestamp. Nil means SystemClock.
	Clock Clock
}

// New creates a Composer reading the given clock. A nil clock uses the wall clock.
func New(clock Clock) *Composer {
	return &Composer{Clock: clock}
}

// Compose prefixes declText with the banner. generatorVersion is rendered
// after "Using", e.g. "dtogen v1.2.0".
func (c *Composer) Compose(declText, generatorVersion string) ComposedOutput {
	clock := c.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	at := clock.Now().UTC()

	var b strings.Builder
	b.Grow(len(declText) + 256)
	b.WriteString(bannerRule + "\n")
	b.WriteString("// AUTO-GENERATED — DO NOT EDIT\n")
	b.WriteString("// Generated from OpenAPI spec on " + at.Format(TimestampFormat) + "\n")
	b.WriteString("// Using " + generatorVersion + "\n")
	b.WriteString(bannerRule + "\n")
	b.WriteString("\n")
	b.WriteString("/* eslint-disable */\n")
	b.WriteString("\n")
	b.WriteString(declText)

	return ComposedOutput{
		Text:             b.String(),
		GeneratedAt:      at,
		GeneratorVersion: generatorVersion,
	}
}

// Compose prefixes declText with the banner using the wall clock.
func Compose(declText, generatorVersion string) ComposedOutput {
	return New(nil).Compose(declText, generatorVersion)
}
