package commands

import "github.com/erraggy/dtogen/internal/mcpserver"

// runMCP is replaced in tests.
var runMCP = mcpserver.Run
