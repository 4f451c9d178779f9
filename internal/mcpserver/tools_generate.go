package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/dtogen/composer"
	"github.com/erraggy/dtogen/materializer"
	"github.com/erraggy/dtogen/pipeline"
)

type generateInput struct {
	Spec           string       `json:"spec,omitempty"            jsonschema:"Path to the OAS file (default openapi/notes-api.yaml)"`
	Models         string       `json:"models,omitempty"          jsonschema:"Models output path (default dist/models.ts)"`
	Index          string       `json:"index,omitempty"           jsonschema:"Index output path (default dist/index.d.ts)"`
	Manifest       []string     `json:"manifest,omitempty"        jsonschema:"Type names re-exported by the index file"`
	IndexMode      string       `json:"index_mode,omitempty"      jsonschema:"duplicate (default) or reexport"`
	StrictManifest bool         `json:"strict_manifest,omitempty" jsonschema:"Fail when a manifest name is not generated"`
	Options        optionsInput `json:"options,omitempty"         jsonschema:"Generation options"`
}

type generateOutput struct {
	RunID         string   `json:"run_id"`
	SpecPath      string   `json:"spec_path"`
	ModelsPath    string   `json:"models_path"`
	IndexPath     string   `json:"index_path"`
	GeneratedAt   string   `json:"generated_at"`
	ExportedTypes []string `json:"exported_types"`
	MissingTypes  []string `json:"missing_types,omitempty"`
}

func handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if !cfg.AllowWrites {
		return errResult(fmt.Errorf("generate_dtos is disabled (DTOGEN_MCP_ALLOW_WRITES=false)")), generateOutput{}, nil
	}

	pc, err := input.pipelineConfig()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}
	res, err := pipeline.Run(ctx, pc)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	return nil, generateOutput{
		RunID:         res.RunID,
		SpecPath:      res.SpecPath,
		ModelsPath:    res.ModelsPath,
		IndexPath:     res.IndexPath,
		GeneratedAt:   res.GeneratedAt.Format(composer.TimestampFormat),
		ExportedTypes: res.ExportedTypes,
		MissingTypes:  res.MissingTypes,
	}, nil
}

func (in generateInput) pipelineConfig() (pipeline.Config, error) {
	pc := pipeline.DefaultConfig()
	pc.Logger = logger
	pc.TranslateTimeout = cfg.Timeout
	pc.MaxFileSize = int64(cfg.MaxContentSize)
	pc.StrictManifest = in.StrictManifest
	if in.Spec != "" {
		pc.SpecPath = in.Spec
	}
	if in.Models != "" {
		pc.TargetPaths.Models = in.Models
	}
	if in.Index != "" {
		pc.TargetPaths.Index = in.Index
	}
	if len(in.Manifest) > 0 {
		pc.Manifest = materializer.Manifest(in.Manifest)
	}
	if in.IndexMode != "" {
		mode, err := materializer.ParseIndexMode(in.IndexMode)
		if err != nil {
			return pc, err
		}
		pc.IndexMode = mode
	}
	opts, err := in.Options.toOptions()
	if err != nil {
		return pc, err
	}
	pc.Options = opts
	return pc, pc.Validate()
}
