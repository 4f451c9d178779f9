package commands

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/erraggy/dtogen/internal/cliutil"
	"github.com/erraggy/dtogen/internal/config"
	"github.com/erraggy/dtogen/internal/telemetry"
	"github.com/erraggy/dtogen/parser"
	"github.com/erraggy/dtogen/pipeline"
)

// GenerateFlags holds the generate command's flag values.
type GenerateFlags struct {
	config.Config
	NoAtomic bool
}

func newGenerateCommand(use string, env config.Config, stdout, stderr io.Writer) *cobra.Command {
	flags := &GenerateFlags{Config: env, NoAtomic: !env.Atomic}

	cmd := &cobra.Command{
		Use:   use,
		Short: "Generate the models and index files",
		Long: `Load the OpenAPI document, translate its schemas into TypeScript
declarations, prefix the provenance banner, and write the models and index
files. Parent directories are created as needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), flags, stdout, stderr)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flags.SpecPath, "spec", flags.SpecPath, "path to the OpenAPI document")
	fs.StringVar(&flags.ModelsPath, "models", flags.ModelsPath, "models output path")
	fs.StringVar(&flags.IndexPath, "index", flags.IndexPath, "index output path")
	fs.StringVar(&flags.Manifest, "manifest", flags.Manifest, "comma-separated type names re-exported by the index file")
	fs.StringVar(&flags.ArrayRepresentation, "array", flags.ArrayRepresentation, "array representation: readonly or mutable")
	fs.StringVar(&flags.DateHandling, "dates", flags.DateHandling, "date handling: dateType or stringType")
	fs.BoolVar(&flags.AdditionalProperties, "additional-properties", flags.AdditionalProperties, "add an index signature to every object that does not forbid extra properties")
	fs.BoolVar(&flags.DefaultAdditionalProperties, "default-additional-properties", flags.DefaultAdditionalProperties, "treat objects without additionalProperties as open")
	fs.BoolVar(&flags.UnionSupport, "union", flags.UnionSupport, "render oneOf/anyOf as unions (false renders unknown)")
	fs.BoolVar(&flags.ExportType, "export-type", flags.ExportType, "emit objects as type aliases (false emits interfaces)")
	fs.StringVar(&flags.IndexMode, "index-mode", flags.IndexMode, "index layout: duplicate or reexport")
	fs.BoolVar(&flags.NoAtomic, "no-atomic", flags.NoAtomic, "write outputs in place instead of staging them")
	fs.BoolVar(&flags.StrictManifest, "strict-manifest", flags.StrictManifest, "fail when a manifest name is not generated")
	fs.BoolVar(&flags.ValidateSchemas, "validate-schemas", flags.ValidateSchemas, "compile schemas as JSON Schema before lowering")
	fs.DurationVar(&flags.Timeout, "timeout", flags.Timeout, "translation timeout")
	fs.StringVar(&flags.MetricsFile, "metrics-file", flags.MetricsFile, "write Prometheus textfile metrics to this path")
	fs.BoolVarP(&flags.Verbose, "verbose", "v", flags.Verbose, "enable debug logging")

	return cmd
}

func runGenerate(ctx context.Context, flags *GenerateFlags, stdout, stderr io.Writer) error {
	start := time.Now()
	c := flags.Config
	c.Atomic = !flags.NoAtomic

	logger := newLogger(stderr, c.Verbose)
	pc, err := c.PipelineConfig()
	if err != nil {
		return err
	}
	pc.Logger = logger

	var rec *telemetry.Recorder
	if c.MetricsFile != "" {
		rec = telemetry.NewRecorder()
	}

	res, err := pipeline.Run(ctx, pc)
	if rec != nil {
		if err != nil {
			rec.ObserveFailure(time.Since(start))
		} else {
			rec.ObserveSuccess(res, time.Now())
		}
		writeMetrics(rec, c.MetricsFile, logger, stderr)
	}
	if err != nil {
		return err
	}

	if len(res.MissingTypes) > 0 {
		cliutil.Warnf(stderr, "re-exported types not found in generated output: %s", strings.Join(res.MissingTypes, ", "))
	}
	cliutil.Successf(stdout, "TypeScript DTOs generated → %s", res.ModelsPath)
	return nil
}

func writeMetrics(rec *telemetry.Recorder, path string, logger parser.Logger, stderr io.Writer) {
	if err := rec.WriteTextfile(path); err != nil {
		logger.Debug("failed to write metrics", "path", path, "error", err)
		cliutil.Warnf(stderr, "could not write metrics to %s: %v", path, err)
	}
}
