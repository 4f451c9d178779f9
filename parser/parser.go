package parser

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/dtogen/dtoerrors"
)

// Parser handles OpenAPI document parsing
type Parser struct {
	// ValidateSchemas compiles every named schema as JSON Schema after decoding
	ValidateSchemas bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	return OrNop(p.Logger)
}

// ParseResult contains the parsed OpenAPI document and metadata.
// Callers should treat it as read-only.
type ParseResult struct {
	// SourcePath is the path the document was read from, or a synthetic
	// name ending in .yaml or .json when parsed from memory
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the version string found in the document (e.g. "3.0.3")
	Version string
	// OASVersion is the enumerated version family
	OASVersion OASVersion
	// Document is the decoded document
	Document *Document
	// Data is the raw decoded document with string keys throughout
	Data map[string]any
	// LoadTime is the time taken to read the source
	LoadTime time.Duration
	// SourceSize is the size of the source in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// Parse reads and parses the document at specPath.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	start := time.Now()
	data, err := os.ReadFile(specPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &dtoerrors.SpecNotFoundError{Path: specPath, Cause: err}
		}
		return nil, &dtoerrors.ParseError{Path: specPath, Message: "failed to read file", Cause: err}
	}
	loadTime := time.Since(start)

	res, err := p.parse(data, specPath)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses a document held in memory.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parse(data, "")
}

func (p *Parser) parse(data []byte, sourcePath string) (*ParseResult, error) {
	format := DetectFormat(sourcePath, data)
	if sourcePath == "" {
		sourcePath = "ParseBytes.yaml"
		if format == SourceFormatJSON {
			sourcePath = "ParseBytes.json"
		}
	}
	log := p.log().With("source", sourcePath)

	if len(data) == 0 {
		return nil, &dtoerrors.ParseError{Path: sourcePath, Message: "document is empty"}
	}

	// First pass: generic map to detect the version
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, newYAMLParseError(sourcePath, "failed to parse YAML/JSON", err)
	}
	if raw == nil {
		return nil, &dtoerrors.ParseError{Path: sourcePath, Message: "document root must be a mapping"}
	}

	version, err := detectVersion(raw)
	if err != nil {
		return nil, &dtoerrors.ParseError{Path: sourcePath, Message: "unable to detect OpenAPI version", Cause: err}
	}
	oasVersion, err := ParseVersion(version)
	if err != nil {
		return nil, &dtoerrors.ParseError{Path: sourcePath, Message: "unsupported OpenAPI version", Cause: err}
	}
	log.Debug("detected OpenAPI version", "version", version, "format", string(format))

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, newYAMLParseError(sourcePath, fmt.Sprintf("failed to decode OAS %s document structure", oasVersion), err)
	}
	doc.OASVersion = oasVersion

	result := &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: format,
		Version:      version,
		OASVersion:   oasVersion,
		Document:     &doc,
		Data:         normalizeMap(raw),
		SourceSize:   int64(len(data)),
		Stats:        GetDocumentStats(&doc),
	}

	if p.ValidateSchemas {
		if err := ValidateSchemas(result); err != nil {
			return nil, err
		}
	}

	log.Debug("parsed document",
		"schemas", result.Stats.SchemaCount,
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount)
	return result, nil
}

// detectVersion determines the OAS version string from the raw data
func detectVersion(data map[string]any) (string, error) {
	if v, ok := data["swagger"]; ok {
		return versionString(v), nil
	}
	if v, ok := data["openapi"]; ok {
		return versionString(v), nil
	}
	return "", fmt.Errorf("document must contain either 'swagger: \"2.0\"' (for OAS 2.0) or 'openapi: \"3.x.x\"' (for OAS 3.x) at the root level")
}

// versionString renders a version field. Unquoted YAML versions like
// `swagger: 2.0` decode as floats.
func versionString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', 1, 64)
	case int:
		return strconv.Itoa(t) + ".0"
	}
	return fmt.Sprint(v)
}

var yamlLineRe = regexp.MustCompile(`line (\d+)(?::\s*column (\d+))?`)

// newYAMLParseError wraps a YAML decoding error, lifting the line and column
// out of the message when present.
func newYAMLParseError(path, msg string, err error) *dtoerrors.ParseError {
	pe := &dtoerrors.ParseError{Path: path, Message: msg, Cause: err}
	if m := yamlLineRe.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			pe.Column, _ = strconv.Atoi(m[2])
		}
	}
	return pe
}

// normalizeMap converts nested map[any]any values (produced for mappings with
// non-string keys such as unquoted status codes) into map[string]any.
func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalizeMap(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeValue(val)
		}
		return out
	}
	return v
}
