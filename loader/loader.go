// Package loader reads an OpenAPI document from disk.
//
// The loader resolves the configured path to an absolute path, checks that a
// regular file exists there, and reads its full content unmodified. A missing
// document is reported as a *dtoerrors.SpecNotFoundError carrying the
// resolved path. There are no retries.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/erraggy/dtogen/dtoerrors"
	"github.com/erraggy/dtogen/parser"
)

// DefaultMaxFileSize is the largest document the loader reads (10MB).
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// SpecDocument is a loaded OpenAPI document. It is read once and not modified.
type SpecDocument struct {
	// Path is the resolved absolute path of the document
	Path string
	// Content is the raw document text
	Content string
	// Format is the format detected from the path and content
	Format parser.SourceFormat
	// Size is the document size in bytes
	Size int64
	// LoadTime is the time taken to read the document
	LoadTime time.Duration
}

// Option is a function that configures a load operation
type Option func(*loadConfig) error

type loadConfig struct {
	filePath    *string
	maxFileSize int64
	logger      parser.Logger
}

// WithFilePath specifies the document path. Relative paths resolve
// against the working directory.
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithMaxFileSize sets the maximum document size in bytes.
// A value of 0 means use the default (10MB).
// Returns an error if size is negative.
func WithMaxFileSize(size int64) Option {
	return func(cfg *loadConfig) error {
		if size < 0 {
			return &dtoerrors.ConfigError{Option: "maxFileSize", Value: size, Message: "cannot be negative"}
		}
		cfg.maxFileSize = size
		return nil
	}
}

// WithLogger sets a structured logger for debug output.
func WithLogger(l parser.Logger) Option {
	return func(cfg *loadConfig) error {
		cfg.logger = l
		return nil
	}
}

// Load reads the document at path with default settings.
func Load(path string) (*SpecDocument, error) {
	return LoadWithOptions(WithFilePath(path))
}

// LoadWithOptions reads a document using functional options.
func LoadWithOptions(opts ...Option) (*SpecDocument, error) {
	cfg := &loadConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.filePath == nil || strings.TrimSpace(*cfg.filePath) == "" {
		return nil, &dtoerrors.ConfigError{Option: "spec", Message: "spec path must not be empty"}
	}
	maxSize := cfg.maxFileSize
	if maxSize == 0 {
		maxSize = DefaultMaxFileSize
	}
	log := parser.OrNop(cfg.logger)

	abs, err := filepath.Abs(*cfg.filePath)
	if err != nil {
		return nil, &dtoerrors.ConfigError{Option: "spec", Value: *cfg.filePath, Message: "cannot resolve path", Cause: err}
	}

	start := time.Now()
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &dtoerrors.SpecNotFoundError{Path: abs}
		}
		return nil, &dtoerrors.SpecNotFoundError{Path: abs, Cause: err}
	}
	if info.IsDir() {
		return nil, &dtoerrors.SpecNotFoundError{Path: abs, Cause: fmt.Errorf("path is a directory")}
	}
	if info.Size() > maxSize {
		return nil, &dtoerrors.ConfigError{
			Option:  "spec",
			Value:   abs,
			Message: fmt.Sprintf("document is %d bytes, exceeding the %d byte limit", info.Size(), maxSize),
		}
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &dtoerrors.SpecNotFoundError{Path: abs}
		}
		return nil, &dtoerrors.ParseError{Path: abs, Message: "failed to read file", Cause: err}
	}

	doc := &SpecDocument{
		Path:     abs,
		Content:  string(data),
		Format:   parser.DetectFormat(abs, data),
		Size:     int64(len(data)),
		LoadTime: time.Since(start),
	}
	log.Debug("loaded spec", "path", abs, "bytes", doc.Size, "format", string(doc.Format))
	return doc, nil
}
