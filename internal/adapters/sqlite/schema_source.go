// Package sqlite contains SQLite implementations of the schema source port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/laramig/internal/models"
	"github.com/example/laramig/internal/ports/secondary"
)

// SchemaSource implements secondary.SchemaSource by introspecting a SQLite database.
type SchemaSource struct {
	db   *sql.DB
	name string
}

// NewSchemaSource creates a schema source over an open database.
func NewSchemaSource(db *sql.DB, name string) *SchemaSource {
	return &SchemaSource{db: db, name: name}
}

// Open opens the database file at path read-only.
func Open(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db, err := sql.Open("sqlite3", readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// readOnlyDSN builds a read-only URI filename. The path is percent-escaped
// so '?', '#' and '%' in it are not taken as URI syntax.
func readOnlyDSN(path string) string {
	u := url.URL{Path: path}
	return "file:" + u.EscapedPath() + "?mode=ro"
}

// Describe names the database.
func (s *SchemaSource) Describe() string {
	return "sqlite:" + s.name
}

// LoadElements returns one entity view per user table, in creation order.
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
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SchemaSource) columns(ctx context.Context, table string) ([]models.Column, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, type FROM pragma_table_info(?) ORDER BY cid", table,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", table, err)
	}
	defer rows.Close()

	var columns []models.Column
	for rows.Next() {
		var name, declared string
		if err := rows.Scan(&name, &declared); err != nil {
			return nil, fmt.Errorf("failed to scan column of %s: %w", table, err)
		}
		typ, length := models.ParseDeclaredType(declared)
		columns = append(columns, models.Column{Name: name, Type: typ, Length: length})
	}
	return columns, rows.Err()
}

var _ secondary.SchemaSource = (*SchemaSource)(nil)
