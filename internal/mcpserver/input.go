package mcpserver

import (
	"fmt"

	"github.com/erraggy/dtogen/internal/options"
	"github.com/erraggy/dtogen/loader"
	"github.com/erraggy/dtogen/translator"
)

// specInput represents the two ways an OAS spec can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// load returns the spec text and the name used in diagnostics.
func (s specInput) load() (text, source string, err error) {
	if err := options.RequireOne("spec",
		options.Source{Name: "file", Set: s.File != ""},
		options.Source{Name: "content", Set: s.Content != ""},
	); err != nil {
		return "", "", err
	}

	if s.File != "" {
		doc, err := loader.LoadWithOptions(
			loader.WithFilePath(s.File),
			loader.WithMaxFileSize(int64(cfg.MaxContentSize)),
		)
		if err != nil {
			return "", "", err
		}
		return doc.Content, doc.Path, nil
	}
	if len(s.Content) > cfg.MaxContentSize {
		return "", "", fmt.Errorf("inline content is %d bytes, exceeding the %d byte limit", len(s.Content), cfg.MaxContentSize)
	}
	return s.Content, "<content>", nil
}

// optionsInput mirrors translator.GenerationOptions. Unset fields keep
// their defaults.
type optionsInput struct {
	Array                       string `json:"array,omitempty"                         jsonschema:"Array representation: readonly (default) or mutable"`
	Dates                       string `json:"dates,omitempty"                         jsonschema:"Date handling: dateType (default) or stringType"`
	AdditionalProperties        *bool  `json:"additional_properties,omitempty"         jsonschema:"Add an index signature to every open object"`
	DefaultAdditionalProperties *bool  `json:"default_additional_properties,omitempty" jsonschema:"Treat objects without additionalProperties as open"`
	Union                       *bool  `json:"union,omitempty"                         jsonschema:"Render oneOf/anyOf as unions (default true)"`
	ExportType                  *bool  `json:"export_type,omitempty"                   jsonschema:"Emit objects as type aliases instead of interfaces (default true)"`
}

func (o optionsInput) toOptions() (translator.GenerationOptions, error) {
	opts := translator.DefaultOptions()
	if o.Array != "" {
		a, err := translator.ParseArrayRepresentation(o.Array)
		if err != nil {
			return opts, err
		}
		opts.ArrayRepresentation = a
	}
	if o.Dates != "" {
		d, err := translator.ParseDateHandling(o.Dates)
		if err != nil {
			return opts, err
		}
		opts.DateHandling = d
	}
	if o.AdditionalProperties != nil {
		opts.AdditionalProperties = *o.AdditionalProperties
	}
	if o.DefaultAdditionalProperties != nil {
		opts.DefaultAdditionalPropertiesPolicy = *o.DefaultAdditionalProperties
	}
	if o.Union != nil {
		opts.UnionSupport = *o.Union
	}
	if o.ExportType != nil {
		opts.ExportType = *o.ExportType
	}
	return opts, nil
}
