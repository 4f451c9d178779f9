package pipeline

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/erraggy/dtogen"
	"github.com/erraggy/dtogen/composer"
	"github.com/erraggy/dtogen/dtoerrors"
	"github.com/erraggy/dtogen/loader"
	"github.com/erraggy/dtogen/materializer"
	"github.com/erraggy/dtogen/parser"
	"github.com/erraggy/dtogen/translator"
)

// DefaultSpecPath is the spec location used when none is configured.
const DefaultSpecPath = "openapi/notes-api.yaml"

// DefaultTranslateTimeout bounds a single translator call.
const DefaultTranslateTimeout = 30 * time.Second

// Config holds everything a run needs.
type Config struct {
	// SpecPath is the OpenAPI document to read
	SpecPath string
	// TargetPaths are the models and index output paths
	TargetPaths materializer.TargetPaths
	// Options control schema lowering
	Options translator.GenerationOptions
	// Manifest lists the names the index file re-exports
	Manifest materializer.Manifest
	// GeneratorVersion is recorded in the banner, e.g. "dtogen v1.2.0"
	GeneratorVersion string

	// Translator converts spec text; nil uses the built-in TypeScript translator
	Translator translator.Translator
	// Clock supplies the banner timestamp; nil uses the wall clock
	Clock composer.Clock
	// Logger receives structured logs; nil disables logging
	Logger parser.Logger

	// TranslateTimeout bounds the translator call; zero uses DefaultTranslateTimeout
	TranslateTimeout time.Duration
	// MaxFileSize limits the spec size in bytes; zero uses the loader default
	MaxFileSize int64
	// Atomic stages both outputs before replacing existing files
	Atomic bool
	// IndexMode selects the index file layout
	IndexMode materializer.IndexMode
	// StrictManifest fails the run when a manifest name is not exported
	StrictManifest bool
	// ValidateSchemas compiles schemas as JSON Schema before lowering.
	// Only used by the built-in translator.
	ValidateSchemas bool
}

// DefaultConfig returns the configuration the CLI starts from.
func DefaultConfig() Config {
	return Config{
		SpecPath:         DefaultSpecPath,
		TargetPaths:      materializer.DefaultTargetPaths(),
		Options:          translator.DefaultOptions(),
		Manifest:         materializer.DefaultManifest(),
		GeneratorVersion: dtogen.GeneratorVersion(),
		TranslateTimeout: DefaultTranslateTimeout,
		Atomic:           true,
		IndexMode:        materializer.IndexModeDuplicate,
		ValidateSchemas:  true,
	}
}

// Result describes a successful run.
type Result struct {
	// RunID identifies the run in logs
	RunID string
	// SpecPath is the resolved absolute spec path
	SpecPath string
	// ModelsPath and IndexPath are the written targets
	ModelsPath string
	IndexPath  string
	// ExportedTypes lists the top-level types declared in the models file
	ExportedTypes []string
	// SchemaCount is the number of schema declarations, excluding the
	// components, paths, and operations interfaces
	SchemaCount int
	// MissingTypes lists manifest names the models file does not export
	MissingTypes []string
	// GeneratedAt is the banner timestamp
	GeneratedAt time.Time
	// Bytes is the size of the models file
	Bytes int

	LoadTime      time.Duration
	TranslateTime time.Duration
	WriteTime     time.Duration
	TotalTime     time.Duration
}

// Validate checks the configuration before any stage runs.
func (c Config) Validate() error {
	if strings.TrimSpace(c.SpecPath) == "" {
		return &dtoerrors.ConfigError{Option: "spec", Message: "spec path must not be empty"}
	}
	if err := c.TargetPaths.Validate(); err != nil {
		return err
	}
	if err := c.Options.Validate(); err != nil {
		return err
	}
	if err := c.Manifest.Validate(); err != nil {
		return err
	}
	if c.TranslateTimeout < 0 {
		return &dtoerrors.ConfigError{Option: "timeout", Value: c.TranslateTimeout, Message: "cannot be negative"}
	}
	if c.IndexMode != "" {
		if _, err := materializer.ParseIndexMode(string(c.IndexMode)); err != nil {
			return err
		}
	}
	return nil
}

// Run executes one generation run.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := parser.OrNop(cfg.Logger).With("run_id", runID)
	res := &Result{RunID: runID}

	// Load
	doc, err := loader.LoadWithOptions(
		loader.WithFilePath(cfg.SpecPath),
		loader.WithMaxFileSize(cfg.MaxFileSize),
		loader.WithLogger(log),
	)
	if err != nil {
		log.Debug("failed to load spec", "spec", cfg.SpecPath, "error", err)
		return nil, err
	}
	res.SpecPath = doc.Path
	res.LoadTime = doc.LoadTime
	log.Info("loaded spec", "spec", doc.Path, "bytes", doc.Size)

	// Translate
	tr := cfg.Translator
	if tr == nil {
		tr = translator.NewTypeScript(
			translator.WithSourceName(doc.Path),
			translator.WithSchemaValidation(cfg.ValidateSchemas),
			translator.WithLogger(log),
		)
	}
	timeout := cfg.TranslateTimeout
	if timeout == 0 {
		timeout = DefaultTranslateTimeout
	}
	translateStart := time.Now()
	decl, err := translate(ctx, tr, doc, cfg.Options, timeout)
	res.TranslateTime = time.Since(translateStart)
	if err != nil {
		log.Debug("translation failed", "spec", doc.Path, "error", err)
		return nil, err
	}

	res.ExportedTypes = materializer.ExportedTypes(decl)
	res.SchemaCount = countSchemas(res.ExportedTypes)
	res.MissingTypes = cfg.Manifest.Verify(decl)
	if len(res.MissingTypes) > 0 {
		log.Warn("manifest names are not exported by the models file", "missing", strings.Join(res.MissingTypes, ","))
		if cfg.StrictManifest {
			return nil, &dtoerrors.TranslationError{
				Source:  doc.Path,
				Message: "re-export manifest names missing from output: " + strings.Join(res.MissingTypes, ", "),
			}
		}
	}

	// Compose
	out := composer.New(cfg.Clock).Compose(decl, cfg.GeneratorVersion)
	res.GeneratedAt = out.GeneratedAt
	res.Bytes = len(out.Text)

	// Materialize
	writeStart := time.Now()
	m := materializer.New(
		materializer.WithAtomic(cfg.Atomic),
		materializer.WithIndexMode(cfg.IndexMode),
		materializer.WithLogger(log),
	)
	if err := m.Materialize(ctx, out, cfg.Manifest, cfg.TargetPaths); err != nil {
		log.Debug("failed to write outputs", "error", err)
		return nil, err
	}
	res.WriteTime = time.Since(writeStart)
	res.ModelsPath = cfg.TargetPaths.Models
	res.IndexPath = cfg.TargetPaths.Index
	res.TotalTime = time.Since(start)

	log.Info("generated TypeScript DTOs",
		"models", res.ModelsPath,
		"index", res.IndexPath,
		"schemas", res.SchemaCount,
		"elapsed", res.TotalTime)
	return res, nil
}

// translate calls tr under a deadline and normalizes its failures into
// *dtoerrors.TranslationError.
func translate(ctx context.Context, tr translator.Translator, doc *loader.SpecDocument, opts translator.GenerationOptions, timeout time.Duration) (string, error) {
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	decl, err := tr.Translate(tctx, doc.Content, opts)
	if err != nil {
		var te *dtoerrors.TranslationError
		if errors.As(err, &te) {
			return "", err
		}
		return "", &dtoerrors.TranslationError{Source: doc.Path, Message: "translator failed", Cause: err}
	}
	if strings.TrimSpace(decl) == "" {
		return "", &dtoerrors.TranslationError{Source: doc.Path, Message: "translator produced no output"}
	}
	return decl, nil
}

func countSchemas(exported []string) int {
	n := 0
	for _, name := range exported {
		if !slices.Contains(translator.LayoutTypes, name) {
			n++
		}
	}
	return n
}
