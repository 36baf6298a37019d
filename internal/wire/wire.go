// Package wire provides dependency injection for the laramig application.
// It builds services and adapters for one CLI invocation.
package wire

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	cliadapter "github.com/example/laramig/internal/adapters/cli"
	"github.com/example/laramig/internal/adapters/filesystem"
	"github.com/example/laramig/internal/adapters/postgres"
	"github.com/example/laramig/internal/adapters/schemafile"
	"github.com/example/laramig/internal/adapters/sqlite"
	"github.com/example/laramig/internal/app"
	"github.com/example/laramig/internal/config"
	"github.com/example/laramig/internal/migration"
	"github.com/example/laramig/internal/ports/secondary"
)

// Settings carry everything one generate run needs.
type Settings struct {
	OutputDir string
	Config    *config.Config
	Confirmer secondary.Confirmer
	Logger    *zap.Logger
}

// SourceSpec selects exactly one schema source.
type SourceSpec struct {
	SchemaFile  string
	SQLitePath  string
	PostgresDSN string
	PGSchema    string
}

// ErrNoSource is returned when a SourceSpec names no source or more than one.
var ErrNoSource = errors.New("exactly one of --schema, --sqlite or --postgres is required")

// BuilderOptions translates the config into migration builder options.
func BuilderOptions(cfg *config.Config) (migration.Options, error) {
	naming, err := migration.ParseNamingMode(cfg.Naming)
	if err != nil {
		return migration.Options{}, err
	}
	return migration.Options{
		Naming:    naming,
		Extension: cfg.Extension,
		Indent:    cfg.Indent,
	}, nil
}

// MigrationAdapter returns a MigrationAdapter writing to out, wired to a
// filesystem FileManager rooted at s.OutputDir.
func MigrationAdapter(s Settings, out io.Writer) (*cliadapter.MigrationAdapter, error) {
	opts, err := BuilderOptions(s.Config)
	if err != nil {
		return nil, err
	}

	files, err := filesystem.NewFileManager(s.OutputDir, s.Config.MigrationsDir, s.Confirmer)
	if err != nil {
		return nil, err
	}

	builder := migration.NewBuilder(files, opts)
	service := app.NewMigrationService(files, builder, s.Logger)
	return cliadapter.NewMigrationAdapter(service, out), nil
}

// SchemaSource opens the source named by spec. The returned close function
// releases any database handle and is never nil.
func SchemaSource(ctx context.Context, spec SourceSpec) (secondary.SchemaSource, func(), error) {
	set := 0
	for _, v := range []string{spec.SchemaFile, spec.SQLitePath, spec.PostgresDSN} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return nil, func() {}, ErrNoSource
	}

	switch {
	case spec.SchemaFile != "":
		return schemafile.NewSource(spec.SchemaFile), func() {}, nil

	case spec.SQLitePath != "":
		db, err := sqlite.Open(spec.SQLitePath)
		if err != nil {
			return nil, func() {}, err
		}
		return sqlite.NewSchemaSource(db, spec.SQLitePath), func() { db.Close() }, nil

	default:
		pool, err := postgres.Connect(ctx, spec.PostgresDSN)
		if err != nil {
			return nil, func() {}, fmt.Errorf("failed to open postgres source: %w", err)
		}
		return postgres.NewSchemaSource(pool, spec.PGSchema), pool.Close, nil
	}
}
