package translator

import (
	"context"
	"strings"
	"time"

	"github.com/erraggy/dtogen/dtoerrors"
	"github.com/erraggy/dtogen/parser"
	"github.com/erraggy/dtogen/walker"
)

// Translator converts OpenAPI document text into TypeScript declaration text.
// Implementations must be safe to call once per run; the built-in TypeScript
// translator is stateless and safe for concurrent use.
type Translator interface {
	Translate(ctx context.Context, specText string, opts GenerationOptions) (string, error)
}

// TypeScript is the built-in Translator. It decodes the document with the
// parser package, checks references, and emits one declaration per named
// schema followed by components, paths, and operations interfaces.
type TypeScript struct {
	// SourceName identifies the document in errors and logs
	SourceName string
	// ValidateSchemas compiles every named schema as JSON Schema before lowering
	ValidateSchemas bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// Option configures a TypeScript translator.
type Option func(*TypeScript)

// WithSourceName sets the name reported in errors.
func WithSourceName(name string) Option {
	return func(t *TypeScript) { t.SourceName = name }
}

// WithSchemaValidation enables or disables JSON Schema compilation of named schemas.
// Default: true
func WithSchemaValidation(enabled bool) Option {
	return func(t *TypeScript) { t.ValidateSchemas = enabled }
}

// WithLogger sets a structured logger.
func WithLogger(l parser.Logger) Option {
	return func(t *TypeScript) { t.Logger = l }
}

// NewTypeScript creates a TypeScript translator with default settings.
func NewTypeScript(opts ...Option) *TypeScript {
	t := &TypeScript{ValidateSchemas: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ Translator = (*TypeScript)(nil)

// Translate parses specText and lowers its schemas into TypeScript.
// Every failure is returned as a *dtoerrors.TranslationError; parse and
// reference failures stay reachable through errors.As.
func (t *TypeScript) Translate(ctx context.Context, specText string, opts GenerationOptions) (string, error) {
	source := t.SourceName
	if source == "" {
		source = "<spec>"
	}
	log := parser.OrNop(t.Logger).With("source", source)
	start := time.Now()

	if err := opts.Validate(); err != nil {
		return "", &dtoerrors.TranslationError{Source: source, Message: "invalid generation options", Cause: err}
	}
	if err := ctx.Err(); err != nil {
		return "", &dtoerrors.TranslationError{Source: source, Message: "translation canceled", Cause: err}
	}

	parseOpts := []parser.Option{parser.WithBytes([]byte(specText)), parser.WithLogger(t.Logger)}
	if t.SourceName != "" {
		parseOpts = append(parseOpts, parser.WithSourcePath(t.SourceName))
	}
	result, err := parser.ParseWithOptions(parseOpts...)
	if err != nil {
		return "", &dtoerrors.TranslationError{Source: source, Message: "failed to parse document", Cause: err}
	}

	if err := walker.CheckRefs(ctx, result); err != nil {
		return "", &dtoerrors.TranslationError{Source: source, Message: "unresolvable reference", Cause: err}
	}
	if t.ValidateSchemas {
		if err := parser.ValidateSchemas(result); err != nil {
			return "", &dtoerrors.TranslationError{Source: source, Message: "invalid schema", Cause: err}
		}
	}

	e := newEmitter(ctx, result.Document, opts, log)
	if err := e.emitDocument(result); err != nil {
		return "", &dtoerrors.TranslationError{Source: source, Message: "failed to emit declarations", Cause: err}
	}

	out := e.String()
	if strings.TrimSpace(out) == "" {
		return "", &dtoerrors.TranslationError{Source: source, Message: "translator produced no output"}
	}

	log.Debug("translated document",
		"schemas", result.Stats.SchemaCount,
		"operations", result.Stats.OperationCount,
		"bytes", len(out),
		"elapsed", time.Since(start))
	return out, nil
}
