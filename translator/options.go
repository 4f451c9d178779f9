package translator

import (
	"fmt"
	"strings"

	"github.com/erraggy/dtogen/dtoerrors"
)

// ArrayRepresentation selects how array schemas are rendered.
type ArrayRepresentation string

const (
	// ArrayMutable renders arrays as `T[]`.
	ArrayMutable ArrayRepresentation = "mutable"
	// ArrayReadonly renders arrays as `readonly T[]`.
	ArrayReadonly ArrayRepresentation = "readonly"
)

// DateHandling selects how `format: date-time` and `format: date` strings are rendered.
type DateHandling string

const (
	// DateAsString renders date formats as `string`.
	DateAsString DateHandling = "stringType"
	// DateAsDate renders date formats as `Date`.
	DateAsDate DateHandling = "dateType"
)

// GenerationOptions controls how schemas are lowered into TypeScript.
// Options are fixed for the duration of one translation.
type GenerationOptions struct {
	// AdditionalProperties adds an `[key: string]: unknown` index signature to
	// every object schema that does not explicitly forbid extra properties.
	AdditionalProperties bool
	// ArrayRepresentation selects `T[]` or `readonly T[]`.
	ArrayRepresentation ArrayRepresentation
	// DefaultAdditionalPropertiesPolicy is applied to object schemas that leave
	// additionalProperties unspecified. False produces closed shapes.
	DefaultAdditionalPropertiesPolicy bool
	// UnionSupport renders oneOf/anyOf as unions. When false they become `unknown`.
	UnionSupport bool
	// DateHandling selects `Date` or `string` for date formats.
	DateHandling DateHandling
	// ExportType emits object schemas as `export type X = {...}` when true and
	// as `export interface X {...}` when false.
	ExportType bool
}

// DefaultOptions returns the options the generator ships with.
func DefaultOptions() GenerationOptions {
	return GenerationOptions{
		AdditionalProperties:              false,
		ArrayRepresentation:               ArrayReadonly,
		DefaultAdditionalPropertiesPolicy: false,
		UnionSupport:                      true,
		DateHandling:                      DateAsDate,
		ExportType:                        true,
	}
}

// Validate reports the first invalid option as a *dtoerrors.ConfigError.
func (o GenerationOptions) Validate() error {
	if _, err := ParseArrayRepresentation(string(o.ArrayRepresentation)); err != nil {
		return err
	}
	if _, err := ParseDateHandling(string(o.DateHandling)); err != nil {
		return err
	}
	return nil
}

// ParseArrayRepresentation parses "mutable" or "readonly" (case-insensitive).
func ParseArrayRepresentation(s string) (ArrayRepresentation, error) {
	switch ArrayRepresentation(strings.ToLower(strings.TrimSpace(s))) {
	case ArrayMutable:
		return ArrayMutable, nil
	case ArrayReadonly:
		return ArrayReadonly, nil
	}
	return "", &dtoerrors.ConfigError{
		Option:  "arrayRepresentation",
		Value:   s,
		Message: fmt.Sprintf("must be %q or %q", ArrayMutable, ArrayReadonly),
	}
}

// ParseDateHandling parses "stringType" or "dateType". The short forms
// "string" and "date" are accepted too.
func ParseDateHandling(s string) (DateHandling, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stringtype", "string":
		return DateAsString, nil
	case "datetype", "date":
		return DateAsDate, nil
	}
	return "", &dtoerrors.ConfigError{
		Option:  "dateHandling",
		Value:   s,
		Message: fmt.Sprintf("must be %q or %q", DateAsString, DateAsDate),
	}
}
