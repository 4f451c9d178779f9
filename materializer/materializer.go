package materializer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/dtogen/composer"
	"github.com/erraggy/dtogen/dtoerrors"
	"github.com/erraggy/dtogen/internal/fileutil"
	"github.com/erraggy/dtogen/parser"
)

// TargetPaths holds the two output locations.
type TargetPaths struct {
	// Models receives the composed output
	Models string
	// Index receives the re-export header, followed by the composed output
	// in IndexModeDuplicate
	Index string
}

// DefaultTargetPaths returns dist/models.ts and dist/index.d.ts.
func DefaultTargetPaths() TargetPaths {
	return TargetPaths{Models: "dist/models.ts", Index: "dist/index.d.ts"}
}

// Validate reports empty or identical target paths as a *dtoerrors.ConfigError.
func (p TargetPaths) Validate() error {
	switch {
	case strings.TrimSpace(p.Models) == "":
		return &dtoerrors.ConfigError{Option: "models", Message: "output path must not be empty"}
	case strings.TrimSpace(p.Index) == "":
		return &dtoerrors.ConfigError{Option: "index", Message: "output path must not be empty"}
	case p.Models == p.Index:
		return &dtoerrors.ConfigError{Option: "index", Value: p.Index, Message: "must differ from the models path"}
	}
	return nil
}

// IndexMode selects what follows the re-export header in the index file.
type IndexMode string

const (
	// IndexModeDuplicate writes the header followed by the full composed output.
	IndexModeDuplicate IndexMode = "duplicate"
	// IndexModeReExportOnly writes only the header.
	IndexModeReExportOnly IndexMode = "reexport"
)

// ParseIndexMode parses "duplicate" or "reexport".
func ParseIndexMode(s string) (IndexMode, error) {
	switch IndexMode(strings.ToLower(strings.TrimSpace(s))) {
	case IndexModeDuplicate:
		return IndexModeDuplicate, nil
	case IndexModeReExportOnly, "reexport-only":
		return IndexModeReExportOnly, nil
	}
	return "", &dtoerrors.ConfigError{
		Option:  "indexMode",
		Value:   s,
		Message: fmt.Sprintf("must be %q or %q", IndexModeDuplicate, IndexModeReExportOnly),
	}
}

// Materializer writes the models and index files.
type Materializer struct {
	// Atomic stages both files as temporaries and renames them into place
	// only after both writes succeed
	Atomic bool
	// IndexMode selects the index file layout
	IndexMode IndexMode
	// Logger is the structured logger for debug output
	Logger parser.Logger
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithAtomic enables or disables atomic writes.
// Default: true
func WithAtomic(enabled bool) Option {
	return func(m *Materializer) { m.Atomic = enabled }
}

// WithIndexMode sets the index file layout.
// Default: IndexModeDuplicate
func WithIndexMode(mode IndexMode) Option {
	return func(m *Materializer) { m.IndexMode = mode }
}

// WithLogger sets a structured logger.
func WithLogger(l parser.Logger) Option {
	return func(m *Materializer) { m.Logger = l }
}

// New creates a Materializer with default settings.
func New(opts ...Option) *Materializer {
	m := &Materializer{Atomic: true, IndexMode: IndexModeDuplicate}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Materialize writes output to both targets using the default Materializer.
func Materialize(ctx context.Context, output composer.ComposedOutput, manifest Manifest, paths TargetPaths) error {
	return New().Materialize(ctx, output, manifest, paths)
}

// IndexContent returns the text written to the index file.
func (m *Materializer) IndexContent(output composer.ComposedOutput, manifest Manifest, paths TargetPaths) string {
	header := manifest.IndexHeader(ModuleSpecifier(paths.Models, paths.Index))
	if m.IndexMode == IndexModeReExportOnly {
		return header
	}
	return header + output.Text
}

// Materialize creates both parent directories and writes the models file
// and the index file. Failures are returned as *dtoerrors.WriteError. In
// atomic mode an existing file is only replaced once both new contents have
// been written out in full, and a failure to move the index into place puts
// the previous models file back.
//
// Concurrent calls against the same targets are not coordinated.
func (m *Materializer) Materialize(ctx context.Context, output composer.ComposedOutput, manifest Manifest, paths TargetPaths) error {
	if err := paths.Validate(); err != nil {
		return err
	}
	if m.IndexMode != "" {
		if _, err := ParseIndexMode(string(m.IndexMode)); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return &dtoerrors.WriteError{Path: paths.Models, Op: "write", Cause: err}
	}
	log := parser.OrNop(m.Logger)

	for _, p := range []string{paths.Models, paths.Index} {
		if err := fileutil.EnsureParentDir(p); err != nil {
			return &dtoerrors.WriteError{Path: p, Op: "mkdir", Cause: err}
		}
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return &dtoerrors.WriteError{Path: p, Op: "stat", Cause: fmt.Errorf("target is a directory")}
		}
	}

	models := []byte(output.Text)
	index := []byte(m.IndexContent(output, manifest, paths))

	if !m.Atomic {
		if err := os.WriteFile(paths.Models, models, fileutil.ReadableByAll); err != nil {
			return &dtoerrors.WriteError{Path: paths.Models, Op: "write", Cause: err}
		}
		if err := os.WriteFile(paths.Index, index, fileutil.ReadableByAll); err != nil {
			return &dtoerrors.WriteError{Path: paths.Index, Op: "write", Cause: err}
		}
		log.Debug("wrote outputs", "models", paths.Models, "index", paths.Index, "atomic", false)
		return nil
	}

	tmpModels, err := fileutil.WriteTemp(paths.Models, models, fileutil.ReadableByAll)
	if err != nil {
		return &dtoerrors.WriteError{Path: paths.Models, Op: "write", Cause: err}
	}
	tmpIndex, err := fileutil.WriteTemp(paths.Index, index, fileutil.ReadableByAll)
	if err != nil {
		_ = os.Remove(tmpModels)
		return &dtoerrors.WriteError{Path: paths.Index, Op: "write", Cause: err}
	}

	prior, err := snapshot(paths.Models)
	if err != nil {
		_ = os.Remove(tmpModels)
		_ = os.Remove(tmpIndex)
		return &dtoerrors.WriteError{Path: paths.Models, Op: "read", Cause: err}
	}
	if err := rename(tmpModels, paths.Models); err != nil {
		_ = os.Remove(tmpModels)
		_ = os.Remove(tmpIndex)
		return &dtoerrors.WriteError{Path: paths.Models, Op: "rename", Cause: err}
	}
	if err := rename(tmpIndex, paths.Index); err != nil {
		_ = os.Remove(tmpIndex)
		if restoreErr := prior.restore(paths.Models); restoreErr != nil {
			log.Warn("failed to restore previous models file", "path", paths.Models, "error", restoreErr)
		}
		return &dtoerrors.WriteError{Path: paths.Index, Op: "rename", Cause: err}
	}
	log.Debug("wrote outputs", "models", paths.Models, "index", paths.Index, "atomic", true)
	return nil
}

// rename is replaced in tests to simulate a failing filesystem.
var rename = os.Rename

// modelsSnapshot is the content of a target before it was replaced.
type modelsSnapshot struct {
	data   []byte
	mode   os.FileMode
	exists bool
}

func snapshot(path string) (modelsSnapshot, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return modelsSnapshot{}, nil
	}
	if err != nil {
		return modelsSnapshot{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return modelsSnapshot{}, err
	}
	return modelsSnapshot{data: data, mode: info.Mode().Perm(), exists: true}, nil
}

// restore puts the snapshot back at path, removing path when there was
// nothing there before.
func (s modelsSnapshot) restore(path string) error {
	if !s.exists {
		return os.Remove(path)
	}
	tmp, err := fileutil.WriteTemp(path, s.data, s.mode)
	if err != nil {
		return err
	}
	if err := rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
