// Package cli contains the cobra commands of the laramig binary.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/laramig/internal/adapters/prompt"
	"github.com/example/laramig/internal/config"
	"github.com/example/laramig/internal/logging"
	"github.com/example/laramig/internal/ports/secondary"
	"github.com/example/laramig/internal/wire"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Laravel migrations from a table schema",
		Long: `Generate one Laravel "create table" migration per entity view.

The schema comes from exactly one source: a YAML/JSON schema file, an
existing SQLite database, or a PostgreSQL schema. Migrations are written to
<out>/migrations; an existing folder is replaced after confirmation.

Examples:
  laramig generate --schema diagram.yaml
  laramig generate --sqlite app.db --out ./database --yes
  laramig generate --postgres postgres://localhost/app --pg-schema billing --dry-run`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	cmd.Flags().String("schema", "", "Schema file (.yaml, .yml or .json)")
	cmd.Flags().String("sqlite", "", "SQLite database to introspect")
	cmd.Flags().String("postgres", "", "PostgreSQL connection string to introspect")
	cmd.Flags().String("pg-schema", "public", "PostgreSQL schema to read tables from")
	cmd.Flags().String("out", "", "Output directory (defaults to the current directory)")
	cmd.Flags().BoolP("yes", "y", false, "Overwrite an existing migrations folder without asking")
	cmd.Flags().Bool("dry-run", false, "Preview without writing files")
	cmd.Flags().String("naming", "", "Class naming mode: first or words")
	cmd.Flags().String("ext", "", "Migration file extension")
	cmd.Flags().BoolP("verbose", "v", false, "Log progress to stderr")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := logging.New(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	spec := wire.SourceSpec{}
	spec.SchemaFile, _ = cmd.Flags().GetString("schema")
	spec.SQLitePath, _ = cmd.Flags().GetString("sqlite")
	spec.PostgresDSN, _ = cmd.Flags().GetString("postgres")
	spec.PGSchema, _ = cmd.Flags().GetString("pg-schema")

	source, closeSource, err := wire.SchemaSource(ctx, spec)
	if err != nil {
		return err
	}
	defer closeSource()

	elements, err := source.LoadElements(ctx)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}
	logger.Debug("schema loaded",
		zap.String("source", source.Describe()),
		zap.Int("elements", len(elements)),
	)

	out, _ := cmd.Flags().GetString("out")
	yes, _ := cmd.Flags().GetBool("yes")
	var confirmer secondary.Confirmer = prompt.NewConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
	if yes {
		confirmer = prompt.AlwaysYes{}
	}

	adapter, err := wire.MigrationAdapter(wire.Settings{
		OutputDir: out,
		Config:    cfg,
		Confirmer: confirmer,
		Logger:    logger,
	}, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		return adapter.Preview(ctx, elements)
	}
	return adapter.Generate(ctx, elements)
}

// applyFlagOverrides copies explicitly set flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("naming") {
		cfg.Naming, _ = cmd.Flags().GetString("naming")
	}
	if cmd.Flags().Changed("ext") {
		cfg.Extension, _ = cmd.Flags().GetString("ext")
	}
}
