// Package config loads process-level defaults for dtogen from DTOGEN_*
// environment variables. The CLI uses these values as flag defaults, so an
// explicit flag always wins over the environment.
package config

import (
	"time"

	env "github.com/caarlos0/env/v11"

	"github.com/erraggy/dtogen/dtoerrors"
	"github.com/erraggy/dtogen/materializer"
	"github.com/erraggy/dtogen/pipeline"
	"github.com/erraggy/dtogen/translator"
)

// Prefix is prepended to every environment variable name.
const Prefix = "DTOGEN_"

// Config holds the environment-derived configuration.
// Each variable is DTOGEN_ followed by the field's env tag.
type Config struct {
	SpecPath   string `env:"SPEC" envDefault:"openapi/notes-api.yaml"`
	ModelsPath string `env:"MODELS" envDefault:"dist/models.ts"`
	IndexPath  string `env:"INDEX" envDefault:"dist/index.d.ts"`
	Manifest   string `env:"MANIFEST" envDefault:"Note,CreateNoteRequest,UpdateNoteRequest,ErrorResponse,SuccessDeleteResponse"`

	// Generation options
	ArrayRepresentation         string `env:"ARRAY" envDefault:"readonly"`
	DateHandling                string `env:"DATES" envDefault:"dateType"`
	AdditionalProperties        bool   `env:"ADDITIONAL_PROPERTIES" envDefault:"false"`
	DefaultAdditionalProperties bool   `env:"DEFAULT_ADDITIONAL_PROPERTIES" envDefault:"false"`
	UnionSupport                bool   `env:"UNION" envDefault:"true"`
	ExportType                  bool   `env:"EXPORT_TYPE" envDefault:"true"`

	// Run behavior
	IndexMode       string        `env:"INDEX_MODE" envDefault:"duplicate"`
	Atomic          bool          `env:"ATOMIC" envDefault:"true"`
	StrictManifest  bool          `env:"STRICT_MANIFEST" envDefault:"false"`
	ValidateSchemas bool          `env:"VALIDATE_SCHEMAS" envDefault:"true"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"30s"`
	MaxFileSize     int64         `env:"MAX_FILE_SIZE" envDefault:"0"`
	MetricsFile     string        `env:"METRICS_FILE" envDefault:""`
	Verbose         bool          `env:"VERBOSE" envDefault:"false"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom reads the configuration from environ instead of the process
// environment. Keys must carry the DTOGEN_ prefix.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, &dtoerrors.ConfigError{Option: "environment", Message: "invalid DTOGEN_ variable", Cause: err}
	}
	return &cfg, nil
}

// GenerationOptions converts the option fields, validating enum values.
func (c *Config) GenerationOptions() (translator.GenerationOptions, error) {
	arrays, err := translator.ParseArrayRepresentation(c.ArrayRepresentation)
	if err != nil {
		return translator.GenerationOptions{}, err
	}
	dates, err := translator.ParseDateHandling(c.DateHandling)
	if err != nil {
		return translator.GenerationOptions{}, err
	}
	return translator.GenerationOptions{
		AdditionalProperties:              c.AdditionalProperties,
		ArrayRepresentation:               arrays,
		DefaultAdditionalPropertiesPolicy: c.DefaultAdditionalProperties,
		UnionSupport:                      c.UnionSupport,
		DateHandling:                      dates,
		ExportType:                        c.ExportType,
	}, nil
}

// PipelineConfig builds a pipeline.Config from c. Fields the environment
// cannot express (translator, clock, logger) are left at their defaults.
func (c *Config) PipelineConfig() (pipeline.Config, error) {
	opts, err := c.GenerationOptions()
	if err != nil {
		return pipeline.Config{}, err
	}
	mode, err := materializer.ParseIndexMode(c.IndexMode)
	if err != nil {
		return pipeline.Config{}, err
	}

	pc := pipeline.DefaultConfig()
	pc.SpecPath = c.SpecPath
	pc.TargetPaths = materializer.TargetPaths{Models: c.ModelsPath, Index: c.IndexPath}
	pc.Options = opts
	pc.Manifest = materializer.ParseManifest(c.Manifest)
	pc.IndexMode = mode
	pc.Atomic = c.Atomic
	pc.StrictManifest = c.StrictManifest
	pc.ValidateSchemas = c.ValidateSchemas
	pc.TranslateTimeout = c.Timeout
	pc.MaxFileSize = c.MaxFileSize
	if err := pc.Validate(); err != nil {
		return pipeline.Config{}, err
	}
	return pc, nil
}
