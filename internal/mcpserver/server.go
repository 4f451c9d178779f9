// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the dtogen pipeline as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/dtogen"
	"github.com/erraggy/dtogen/parser"
)

const serverInstructions = `dtogen MCP server: lowers OpenAPI schemas into TypeScript DTO declarations.

Tools:
- translate_spec returns declarations without touching the filesystem.
- generate_dtos runs the full pipeline and writes the models and index files.
- list_schemas reports the named schemas and the TypeScript names they lower to.

Configuration: defaults are configurable via DTOGEN_MCP_* environment variables.
- DTOGEN_MCP_ALLOW_WRITES (default: true) disables generate_dtos when false
- DTOGEN_MCP_MAX_CONTENT_SIZE (default: 10485760) limits spec size in bytes
- DTOGEN_MCP_TIMEOUT (default: 30s) bounds a single translation`

// logger receives structured logs from tool handlers.
var logger parser.Logger = parser.NopLogger{}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context, l parser.Logger) error {
	logger = parser.OrNop(l)

	server := mcp.NewServer(
		&mcp.Implementation{Name: "dtogen", Version: dtogen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "translate_spec",
		Description: "Translate an OpenAPI document (2.0, 3.0, 3.1) into TypeScript type declarations. Returns the declaration text and the exported type names. Nothing is written to disk. Options control array mutability, date handling, unions, and object openness.",
	}, handleTranslate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_dtos",
		Description: "Generate the TypeScript DTO files for an OpenAPI document on disk. Writes the models file (banner plus declarations) and the index file (re-export header for the manifest). Defaults: spec openapi/notes-api.yaml, models dist/models.ts, index dist/index.d.ts. Set strict_manifest to fail when a manifest name is not generated.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_schemas",
		Description: "List the named schemas of an OpenAPI document with the TypeScript type name each lowers to. Also reports the OAS version and the operation count.",
	}, handleListSchemas)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
