// Package options provides shared utilities for option validation across packages.
package options

import (
	"strings"

	"github.com/erraggy/dtogen/dtoerrors"
)

// Source is one way of supplying an input, e.g. a file path or inline bytes.
type Source struct {
	// Name is how the source is spelled to the caller, e.g. "WithFilePath" or "file"
	Name string
	// Set reports whether the caller supplied it
	Set bool
}

// RequireOne returns a *dtoerrors.ConfigError for option unless exactly one
// of sources is set.
func RequireOne(option string, sources ...Source) error {
	var set, all []string
	for _, s := range sources {
		all = append(all, s.Name)
		if s.Set {
			set = append(set, s.Name)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &dtoerrors.ConfigError{
			Option:  option,
			Message: "must specify an input source (use " + strings.Join(all, " or ") + ")",
		}
	default:
		return &dtoerrors.ConfigError{
			Option:  option,
			Message: "must specify exactly one input source (got " + strings.Join(set, " and ") + ")",
		}
	}
}
