package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/dtogen/materializer"
	"github.com/erraggy/dtogen/translator"
)

type translateInput struct {
	Spec    specInput    `json:"spec"              jsonschema:"The OAS document to translate"`
	Options optionsInput `json:"options,omitempty" jsonschema:"Generation options"`
}

type translateOutput struct {
	Declarations  string   `json:"declarations"`
	ExportedTypes []string `json:"exported_types"`
}

func handleTranslate(ctx context.Context, _ *mcp.CallToolRequest, input translateInput) (*mcp.CallToolResult, translateOutput, error) {
	text, source, err := input.Spec.load()
	if err != nil {
		return errResult(err), translateOutput{}, nil
	}
	opts, err := input.Options.toOptions()
	if err != nil {
		return errResult(err), translateOutput{}, nil
	}

	tctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	tr := translator.NewTypeScript(translator.WithSourceName(source), translator.WithLogger(logger))
	decl, err := tr.Translate(tctx, text, opts)
	if err != nil {
		return errResult(err), translateOutput{}, nil
	}

	return nil, translateOutput{
		Declarations:  decl,
		ExportedTypes: materializer.ExportedTypes(decl),
	}, nil
}
