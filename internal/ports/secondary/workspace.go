// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrCancelled is returned by FileManager.PrepareMigrationsFolder when the
// user declines to overwrite an existing migrations folder.
var ErrCancelled = errors.New("canceled operation by user")

// FileManager defines the secondary port for the migrations output folder.
type FileManager interface {
	// PrepareMigrationsFolder ensures the migrations folder exists and is empty.
	// An existing folder is only replaced after confirmation; otherwise ErrCancelled.
	PrepareMigrationsFolder(ctx context.Context) error

	// MigrationsPath returns the absolute folder migrations are written to.
	MigrationsPath() string

	// WriteFile writes content to name inside the migrations folder in one
	// complete write. A failed write leaves no partial file behind.
	WriteFile(ctx context.Context, name string, content []byte) error
}

// Confirmer defines the secondary port for yes/no questions to the user.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}
