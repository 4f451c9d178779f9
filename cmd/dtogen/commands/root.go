// Package commands provides the cobra command tree for the dtogen CLI.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erraggy/dtogen"
	"github.com/erraggy/dtogen/internal/cliutil"
	"github.com/erraggy/dtogen/internal/config"
	"github.com/erraggy/dtogen/parser"
)

// Execute runs the CLI with args and returns the process exit code.
// Errors are printed to stderr as "Error: <msg>".
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	env, err := config.Load()
	if err != nil {
		cliutil.Error(stderr, err)
		return 1
	}

	root := NewRootCommand(env, stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		cliutil.Error(stderr, err)
		return 1
	}
	return 0
}

// NewRootCommand builds the command tree. Flag defaults come from env.
// Running the root command without a subcommand generates DTOs.
func NewRootCommand(env *config.Config, stdout, stderr io.Writer) *cobra.Command {
	root := newGenerateCommand("dtogen", *env, stdout, stderr)
	root.Short = "Generate TypeScript DTOs from an OpenAPI document"
	root.Long = `dtogen reads an OpenAPI document, lowers its schemas into TypeScript type
declarations, and writes a models file plus an index file that re-exports a
fixed manifest of named types.

Running dtogen without a subcommand is the same as "dtogen generate".
Flag defaults can be set with DTOGEN_* environment variables.`
	root.Version = dtogen.Version()
	root.SilenceErrors = true
	root.SilenceUsage = true
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		newGenerateCommand("generate", *env, stdout, stderr),
		newVersionCommand(stdout),
		newMCPCommand(stderr),
	)
	return root
}

// newLogger returns a slog-backed logger on w. Verbose enables debug
// output; otherwise only warnings and errors are logged.
func newLogger(w io.Writer, verbose bool) parser.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return parser.NewSlogAdapter(slog.New(handler))
}

func newVersionCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cliutil.Writef(stdout, "%s\n%s", dtogen.GeneratorVersion(), dtogen.BuildInfo())
			return nil
		},
	}
}

func newMCPCommand(stderr io.Writer) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the generator as MCP tools over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the
translate_spec, generate_dtos, and list_schemas tools. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runMCP(cmd.Context(), newLogger(stderr, verbose)); err != nil {
				return fmt.Errorf("mcp server: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}
