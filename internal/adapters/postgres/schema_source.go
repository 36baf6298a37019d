// Package postgres contains the PostgreSQL implementation of the schema source port.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/laramig/internal/models"
	"github.com/example/laramig/internal/ports/secondary"
)

// DefaultSchema is introspected when no schema is given.
const DefaultSchema = "public"

// Querier is the subset of pgx used here; *pgx.Conn and *pgxpool.Pool satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// SchemaSource implements secondary.SchemaSource by introspecting one
// PostgreSQL schema through information_schema.
type SchemaSource struct {
	db     Querier
	schema string
}

// NewSchemaSource creates a schema source. An empty schema means DefaultSchema.
func NewSchemaSource(db Querier, schema string) *SchemaSource {
	if schema == "" {
		schema = DefaultSchema
	}
	return &SchemaSource{db: db, schema: schema}
}

// Connect opens a pool for dsn and checks that the server answers.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return pool, nil
}

// Describe names the introspected schema.
func (s *SchemaSource) Describe() string {
	return "postgres:" + s.schema
}

// LoadElements returns one entity view per base table, ordered by name.
func (s *SchemaSource) LoadElements(ctx context.Context) ([]models.Element, error) {
	names, err := s.tableNames(ctx)
	if err != nil {
		return nil, err
	}

	elements := make([]models.Element, 0, len(names))
	for _, name := range names {
		columns, err := s.columns(ctx, name)
		if err != nil {
			return nil, err
		}
		elements = append(elements, models.EntityView(models.Table{Name: name, Columns: columns}))
	}
	return elements, nil
}

func (s *SchemaSource) tableNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name`, s.schema)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan table names: %w", err)
	}
	return names, nil
}

type columnRow struct {
	Name     string
	DataType string
	Length   int32
}

func (s *SchemaSource) columns(ctx context.Context, table string) ([]models.Column, error) {
	rows, err := s.db.Query(ctx, `
		SELECT column_name, data_type, COALESCE(character_maximum_length, 0)::int4
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position`, s.schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", table, err)
	}

	found, err := pgx.CollectRows(rows, pgx.RowToStructByPos[columnRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan columns of %s: %w", table, err)
	}

	columns := make([]models.Column, 0, len(found))
	for _, c := range found {
		typ, length := models.ParseDeclaredType(c.DataType)
		if c.Length > 0 {
			length = int(c.Length)
		}
		columns = append(columns, models.Column{Name: c.Name, Type: typ, Length: length})
	}
	return columns, nil
}

var _ secondary.SchemaSource = (*SchemaSource)(nil)
