// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/laramig/internal/ports/secondary"
)

// DefaultMigrationsDir is the folder created under the base path.
const DefaultMigrationsDir = "migrations"

// FileManager implements secondary.FileManager on the local filesystem.
type FileManager struct {
	migrationsPath string
	confirmer      secondary.Confirmer
}

// NewFileManager creates a FileManager writing to basePath/migrationsDir.
// If basePath is empty, the current directory is used.
func NewFileManager(basePath, migrationsDir string, confirmer secondary.Confirmer) (*FileManager, error) {
	if basePath == "" {
		basePath = "."
	}
	if migrationsDir == "" {
		migrationsDir = DefaultMigrationsDir
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base path: %w", err)
	}

	return &FileManager{
		migrationsPath: filepath.Join(abs, migrationsDir),
		confirmer:      confirmer,
	}, nil
}

// PrepareMigrationsFolder creates the migrations folder. An existing folder
// is removed and recreated once the confirmer agrees.
func (m *FileManager) PrepareMigrationsFolder(ctx context.Context) error {
	exists, err := m.DirectoryExists(ctx, m.migrationsPath)
	if err != nil {
		return err
	}

	if exists {
		ok, err := m.confirmer.Confirm(ctx, fmt.Sprintf("Folder %s already exists, overwrite?", m.migrationsPath))
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			return secondary.ErrCancelled
		}
		if err := os.RemoveAll(m.migrationsPath); err != nil {
			return fmt.Errorf("failed to remove directory: %w", err)
		}
	}

	if err := os.MkdirAll(m.migrationsPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// MigrationsPath returns the absolute migrations folder.
func (m *FileManager) MigrationsPath() string {
	return m.migrationsPath
}

// WriteFile writes content to a temporary file and renames it into place,
// so readers never observe a partial migration.
func (m *FileManager) WriteFile(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(m.migrationsPath, "."+name+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(m.migrationsPath, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}

// DirectoryExists checks if a directory exists.
func (m *FileManager) DirectoryExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check directory: %w", err)
	}
	return info.IsDir(), nil
}

// Ensure FileManager implements the interface
var _ secondary.FileManager = (*FileManager)(nil)
