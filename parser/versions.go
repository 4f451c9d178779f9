package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// OASVersion identifies the OpenAPI Specification family of a document.
// Patch releases within a family share schema semantics, so only
// major.minor is tracked.
type OASVersion int

const (
	// Unknown represents an unknown or invalid OAS version
	Unknown OASVersion = iota
	// OASVersion20 OpenAPI Specification Version 2.0 (Swagger)
	OASVersion20
	// OASVersion30 OpenAPI Specification Version 3.0.x
	OASVersion30
	// OASVersion31 OpenAPI Specification Version 3.1.x
	OASVersion31
	// OASVersion32 OpenAPI Specification Version 3.2.x
	OASVersion32
)

var versionToString = map[OASVersion]string{
	OASVersion20: "2.0",
	OASVersion30: "3.0",
	OASVersion31: "3.1",
	OASVersion32: "3.2",
}

// String returns the major.minor form of the version, or "unknown".
func (v OASVersion) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// IsOAS3 reports whether v is any 3.x family.
func (v OASVersion) IsOAS3() bool {
	return v == OASVersion30 || v == OASVersion31 || v == OASVersion32
}

// UsesTypeArrays reports whether the family expresses nullability through
// `type: [T, "null"]` (JSON Schema 2020-12) rather than `nullable: true`.
func (v OASVersion) UsesTypeArrays() bool {
	return v == OASVersion31 || v == OASVersion32
}

// ParseVersion maps a version string such as "3.0.3" or "2.0" to its family.
func ParseVersion(s string) (OASVersion, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown, fmt.Errorf("parser: empty version string")
	}

	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return Unknown, fmt.Errorf("parser: invalid version %q: expected major.minor[.patch]", s)
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return Unknown, fmt.Errorf("parser: invalid version %q: %w", s, err)
		}
	}

	switch parts[0] + "." + parts[1] {
	case "2.0":
		return OASVersion20, nil
	case "3.0":
		return OASVersion30, nil
	case "3.1":
		return OASVersion31, nil
	case "3.2":
		return OASVersion32, nil
	}
	return Unknown, fmt.Errorf("parser: unsupported OpenAPI version %q", s)
}
