package sqlite_test

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/laramig/internal/adapters/sqlite"
	"github.com/example/laramig/internal/models"
)

const testSchema = `
CREATE TABLE users (
	id BIGINT PRIMARY KEY,
	email VARCHAR(255) NOT NULL,
	bio TEXT,
	payload JSON
);
CREATE TABLE accounts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	active BOOLEAN NOT NULL DEFAULT 0,
	balance NUMERIC(10, 2),
	opened_at DATETIME
);
`

// setupTestDB creates an in-memory database holding testSchema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every connection to :memory: is a separate database.
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(testSchema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func TestSchemaSource_LoadElements(t *testing.T) {
	src := sqlite.NewSchemaSource(setupTestDB(t), "test")

	elements, err := src.LoadElements(context.Background())
	if err != nil {
		t.Fatalf("LoadElements failed: %v", err)
	}

	// sqlite_sequence from AUTOINCREMENT must not show up.
	if len(elements) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(elements))
	}

	users := elements[0].Table
	if users.Name != "users" || !elements[0].IsEntityView() {
		t.Fatalf("expected users entity view first, got %+v", elements[0])
	}

	expected := []models.Column{
		{Name: "id", Type: models.TypeBigInt},
		{Name: "email", Type: models.TypeVarchar, Length: 255},
		{Name: "bio", Type: models.TypeText},
		{Name: "payload", Type: "JSON"},
	}
	if len(users.Columns) != len(expected) {
		t.Fatalf("expected %d columns, got %d", len(expected), len(users.Columns))
	}
	for i, col := range expected {
		if users.Columns[i] != col {
			t.Errorf("column %d = %+v, want %+v", i, users.Columns[i], col)
		}
	}

	accounts := elements[1].Table
	if accounts.Name != "accounts" {
		t.Errorf("expected accounts second, got %s", accounts.Name)
	}
	wantTypes := []models.ColumnType{models.TypeInteger, models.TypeBoolean, models.TypeDecimal, models.TypeDateTime}
	for i, typ := range wantTypes {
		if accounts.Columns[i].Type != typ {
			t.Errorf("accounts column %d type = %s, want %s", i, accounts.Columns[i].Type, typ)
		}
	}
}

func TestSchemaSource_EmptyDatabase(t *testing.T) {
	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer testDB.Close()

	elements, err := sqlite.NewSchemaSource(testDB, "empty").LoadElements(context.Background())
	if err != nil {
		t.Fatalf("LoadElements failed: %v", err)
	}
	if len(elements) != 0 {
		t.Errorf("expected no elements, got %d", len(elements))
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	rw, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rw.Exec("CREATE TABLE posts (title VARCHAR(80))"); err != nil {
		t.Fatal(err)
	}
	rw.Close()

	db, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	src := sqlite.NewSchemaSource(db, path)
	elements, err := src.LoadElements(context.Background())
	if err != nil {
		t.Fatalf("LoadElements failed: %v", err)
	}
	if len(elements) != 1 || elements[0].Table.Columns[0].Length != 80 {
		t.Errorf("unexpected elements: %+v", elements)
	}
	if src.Describe() != "sqlite:"+path {
		t.Errorf("Describe() = %q", src.Describe())
	}
}

func TestOpen_PathWithURISyntax(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "odd?name#50%")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "app.db")

	// A plain DSN would be cut at '?', so create the file through an escaped URI.
	created := url.URL{Path: path}
	rw, err := sql.Open("sqlite3", "file:"+created.EscapedPath()+"?mode=rwc")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rw.Exec("CREATE TABLE tags (label VARCHAR(32))"); err != nil {
		t.Fatal(err)
	}
	rw.Close()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database not created at %s: %v", path, err)
	}

	db, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	elements, err := sqlite.NewSchemaSource(db, path).LoadElements(context.Background())
	if err != nil {
		t.Fatalf("LoadElements failed: %v", err)
	}
	if len(elements) != 1 || elements[0].Table.Name != "tags" {
		t.Errorf("expected the tags table from %s, got %+v", path, elements)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := sqlite.Open(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected error for missing database")
	}
}
