// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting, but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/laramig/internal/models"
	"github.com/example/laramig/internal/ports/primary"
)

// CancelledMessage is printed when the user declines to overwrite the folder.
const CancelledMessage = "Canceled operation by user."

// MigrationAdapter is a thin adapter that translates CLI operations to MigrationService calls.
// It depends only on the MigrationService interface, enabling easy testing with mocks.
type MigrationAdapter struct {
	service primary.MigrationService
	out     io.Writer
}

// NewMigrationAdapter creates a new MigrationAdapter with the given service.
func NewMigrationAdapter(service primary.MigrationService, out io.Writer) *MigrationAdapter {
	return &MigrationAdapter{
		service: service,
		out:     out,
	}
}

// Generate writes migrations and reports each file. Write failures are
// reported after every element has been attempted.
func (a *MigrationAdapter) Generate(ctx context.Context, elements []models.Element) error {
	result, err := a.service.Generate(ctx, elements)
	if result == nil {
		return err
	}

	if result.Cancelled {
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint(CancelledMessage))
		return nil
	}

	for _, f := range result.Written {
		fmt.Fprintf(a.out, "%s Created %s\n", color.New(color.FgGreen).Sprint("✓"), f.Path)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "%d migration(s) written to %s", len(result.Written), result.Folder)
	if result.Skipped > 0 {
		fmt.Fprintf(a.out, ", %d element(s) skipped", result.Skipped)
	}
	if result.Failed > 0 {
		fmt.Fprintf(a.out, ", %s", color.New(color.FgRed).Sprintf("%d failed", result.Failed))
	}
	fmt.Fprintln(a.out)

	return err
}

// Preview prints every rendered migration without writing it.
func (a *MigrationAdapter) Preview(ctx context.Context, elements []models.Element) error {
	files, err := a.service.Preview(ctx, elements)
	if err != nil {
		return fmt.Errorf("failed to render migrations: %w", err)
	}

	if len(files) == 0 {
		fmt.Fprintln(a.out, "No tables found")
		return nil
	}

	fmt.Fprintln(a.out, "(dry-run mode - no files written)")
	fmt.Fprintln(a.out)
	for _, f := range files {
		fmt.Fprintf(a.out, "--- %s ---\n", f.FileName)
		fmt.Fprint(a.out, f.Content)
		fmt.Fprintln(a.out)
	}
	return nil
}
