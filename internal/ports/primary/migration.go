// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"

	"github.com/example/laramig/internal/models"
)

// MigrationService defines the primary port for migration generation.
type MigrationService interface {
	// Generate prepares the migrations folder and writes one migration per
	// entity view, in order. A declined overwrite is reported through
	// BatchResult.Cancelled, not as an error.
	Generate(ctx context.Context, elements []models.Element) (*BatchResult, error)

	// Preview renders the migrations without touching the filesystem.
	Preview(ctx context.Context, elements []models.Element) ([]*MigrationFile, error)
}

// MigrationFile is one rendered migration.
type MigrationFile struct {
	Table     string
	ClassName string
	FileName  string
	Path      string // empty for previews
	Content   string
}

// BatchResult summarizes a Generate run.
type BatchResult struct {
	Written   []*MigrationFile
	Skipped   int // elements that are not entity views
	Failed    int // entity views whose migration could not be written
	Cancelled bool
	Folder    string
}
