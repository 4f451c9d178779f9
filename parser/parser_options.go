package parser

import (
	"fmt"

	"github.com/erraggy/dtogen/internal/options"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	bytes    []byte

	validateSchemas bool
	logger          Logger

	// Source identification
	sourcePath *string
}

// ParseWithOptions parses an OpenAPI document using functional options.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi/notes-api.yaml"),
//	    parser.WithSchemaValidation(true),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		ValidateSchemas: cfg.validateSchemas,
		Logger:          cfg.logger,
	}

	var result *ParseResult
	switch {
	case cfg.filePath != nil:
		result, err = p.Parse(*cfg.filePath)
	default:
		source := ""
		if cfg.sourcePath != nil {
			source = *cfg.sourcePath
		}
		result, err = p.parse(cfg.bytes, source)
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourcePath != nil {
		result.SourcePath = *cfg.sourcePath
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.RequireOne("input",
		options.Source{Name: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Name: "WithBytes", Set: cfg.bytes != nil},
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("parser: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithSourcePath sets the SourcePath reported in the result and in errors.
// With WithBytes it also drives format detection by extension.
func WithSourcePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourcePath = &path
		return nil
	}
}

// WithSchemaValidation enables or disables JSON Schema compilation of every
// named schema.
// Default: false
func WithSchemaValidation(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.validateSchemas = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output during parsing.
// By default, no logging is performed (nil logger).
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}
