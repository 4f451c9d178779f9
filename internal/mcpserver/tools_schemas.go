package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/dtogen/internal/schemautil"
	"github.com/erraggy/dtogen/parser"
	"github.com/erraggy/dtogen/translator"
	"github.com/erraggy/dtogen/walker"
)

type listSchemasInput struct {
	Spec specInput `json:"spec" jsonschema:"The OAS document to inspect"`
}

type schemaSummary struct {
	Name     string `json:"name"`
	TypeName string `json:"type_name"`
	Type     string `json:"type,omitempty"`
	JSONPath string `json:"json_path"`
}

type listSchemasOutput struct {
	Version        string          `json:"version"`
	SchemaCount    int             `json:"schema_count"`
	OperationCount int             `json:"operation_count"`
	Schemas        []schemaSummary `json:"schemas,omitempty"`
}

func handleListSchemas(_ context.Context, _ *mcp.CallToolRequest, input listSchemasInput) (*mcp.CallToolResult, listSchemasOutput, error) {
	text, _, err := input.Spec.load()
	if err != nil {
		return errResult(err), listSchemasOutput{}, nil
	}
	result, err := parser.New().ParseBytes([]byte(text))
	if err != nil {
		return errResult(err), listSchemasOutput{}, nil
	}
	schemas, err := walker.CollectSchemas(result)
	if err != nil {
		return errResult(err), listSchemasOutput{}, nil
	}
	ops, err := walker.CollectOperations(result)
	if err != nil {
		return errResult(err), listSchemasOutput{}, nil
	}

	output := listSchemasOutput{
		Version:        result.Version,
		SchemaCount:    len(schemas.Named),
		OperationCount: len(ops),
	}
	typeNames := translator.TypeNames(result.Document)
	for _, info := range schemas.Named {
		output.Schemas = append(output.Schemas, schemaSummary{
			Name:     info.Name,
			TypeName: typeNames[info.Name],
			Type:     schemautil.InferType(info.Schema),
			JSONPath: info.JSONPath,
		})
	}
	return nil, output, nil
}
