package materializer

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/erraggy/dtogen/dtoerrors"
	"github.com/erraggy/dtogen/internal/naming"
)

// Manifest is the ordered list of type names the index file re-exports.
type Manifest []string

// DefaultManifest returns the names re-exported by default.
func DefaultManifest() Manifest {
	return Manifest{
		"Note",
		"CreateNoteRequest",
		"UpdateNoteRequest",
		"ErrorResponse",
		"SuccessDeleteResponse",
	}
}

// ParseManifest splits a comma-separated list of names. Blank entries are ignored.
func ParseManifest(s string) Manifest {
	var m Manifest
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			m = append(m, name)
		}
	}
	return m
}

// Validate checks that every name is a unique TypeScript identifier.
func (m Manifest) Validate() error {
	seen := make(map[string]bool, len(m))
	for _, name := range m {
		if !naming.IsIdentifier(name) {
			return &dtoerrors.ConfigError{Option: "manifest", Value: name, Message: "not a valid TypeScript identifier"}
		}
		if seen[name] {
			return &dtoerrors.ConfigError{Option: "manifest", Value: name, Message: "listed more than once"}
		}
		seen[name] = true
	}
	return nil
}

var exportedTypeRe = regexp.MustCompile(`(?m)^export (?:type|interface) ([A-Za-z_$][\w$]*)`)

// ExportedTypes returns the names of top-level exported types and
// interfaces declared in text, in order of appearance.
func ExportedTypes(text string) []string {
	matches := exportedTypeRe.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Verify returns the manifest names that declText does not export, in
// manifest order. An empty result means every name resolves.
func (m Manifest) Verify(declText string) []string {
	exported := make(map[string]bool)
	for _, name := range ExportedTypes(declText) {
		exported[name] = true
	}
	var missing []string
	for _, name := range m {
		if !exported[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// IndexHeader renders the re-export block placed at the top of the index
// file. moduleSpecifier is the import path of the models file, e.g. "./models".
func (m Manifest) IndexHeader(moduleSpecifier string) string {
	var b strings.Builder
	b.WriteString("// Re-exported named types for better DX\n")
	if len(m) == 0 {
		fmt.Fprintf(&b, "export type {} from '%s';\n\n", moduleSpecifier)
		return b.String()
	}
	b.WriteString("export type {\n")
	for i, name := range m {
		b.WriteString("  " + name)
		if i < len(m)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "} from '%s';\n\n", moduleSpecifier)
	return b.String()
}

// ModuleSpecifier returns the relative import path of modelsPath as seen
// from the directory of indexPath, without the file extension.
// Example: ("dist/models.ts", "dist/index.d.ts") -> "./models"
func ModuleSpecifier(modelsPath, indexPath string) string {
	rel, err := filepath.Rel(filepath.Dir(indexPath), modelsPath)
	if err != nil {
		rel = filepath.Base(modelsPath)
	}
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel
}
