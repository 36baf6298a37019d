package filesystem_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/laramig/internal/adapters/filesystem"
	"github.com/example/laramig/internal/ports/secondary"
)

type stubConfirmer struct {
	answer bool
	err    error
	asked  int
}

func (s *stubConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	s.asked++
	return s.answer, s.err
}

func TestFileManager_CreatesFolder(t *testing.T) {
	tmpDir := t.TempDir()
	confirmer := &stubConfirmer{}
	fm, err := filesystem.NewFileManager(tmpDir, "", confirmer)
	if err != nil {
		t.Fatalf("failed to create file manager: %v", err)
	}

	if err := fm.PrepareMigrationsFolder(context.Background()); err != nil {
		t.Fatalf("PrepareMigrationsFolder failed: %v", err)
	}

	expected := filepath.Join(tmpDir, "migrations")
	if fm.MigrationsPath() != expected {
		t.Errorf("expected %s, got %s", expected, fm.MigrationsPath())
	}
	if info, err := os.Stat(expected); err != nil || !info.IsDir() {
		t.Errorf("expected directory %s to exist", expected)
	}
	if confirmer.asked != 0 {
		t.Errorf("confirmer asked %d times for a new folder, want 0", confirmer.asked)
	}
}

func TestFileManager_OverwriteConfirmed(t *testing.T) {
	tmpDir := t.TempDir()
	stale := filepath.Join(tmpDir, "db", "old.php")
	if err := os.MkdirAll(filepath.Dir(stale), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	confirmer := &stubConfirmer{answer: true}
	fm, err := filesystem.NewFileManager(tmpDir, "db", confirmer)
	if err != nil {
		t.Fatal(err)
	}

	if err := fm.PrepareMigrationsFolder(context.Background()); err != nil {
		t.Fatalf("PrepareMigrationsFolder failed: %v", err)
	}
	if confirmer.asked != 1 {
		t.Errorf("confirmer asked %d times, want 1", confirmer.asked)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("expected existing folder contents to be removed")
	}
}

func TestFileManager_OverwriteDeclined(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "migrations", "keep.php")
	if err := os.MkdirAll(filepath.Dir(existing), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	fm, err := filesystem.NewFileManager(tmpDir, "", &stubConfirmer{answer: false})
	if err != nil {
		t.Fatal(err)
	}

	err = fm.PrepareMigrationsFolder(context.Background())
	if !errors.Is(err, secondary.ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if _, err := os.Stat(existing); err != nil {
		t.Error("declined overwrite must leave existing files alone")
	}
}

func TestFileManager_ConfirmError(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, "migrations"), 0755); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("no tty")
	fm, err := filesystem.NewFileManager(tmpDir, "", &stubConfirmer{err: boom})
	if err != nil {
		t.Fatal(err)
	}

	if err := fm.PrepareMigrationsFolder(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped confirm error, got %v", err)
	}
}

func TestFileManager_WriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	fm, err := filesystem.NewFileManager(tmpDir, "", &stubConfirmer{})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := fm.PrepareMigrationsFolder(ctx); err != nil {
		t.Fatal(err)
	}

	name := "2024_01_02_030405_create_users_table.php"
	if err := fm.WriteFile(ctx, name, []byte("<?php\n")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(fm.MigrationsPath(), name))
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(data) != "<?php\n" {
		t.Errorf("content = %q, want %q", data, "<?php\n")
	}

	entries, err := os.ReadDir(fm.MigrationsPath())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the migration in the folder, found %d entries", len(entries))
	}
}

func TestFileManager_WriteFileMissingFolder(t *testing.T) {
	fm, err := filesystem.NewFileManager(t.TempDir(), "", &stubConfirmer{})
	if err != nil {
		t.Fatal(err)
	}

	if err := fm.WriteFile(context.Background(), "x.php", []byte("x")); err == nil {
		t.Error("expected error when the migrations folder was never prepared")
	}
}

func TestFileManager_WriteFileCancelledContext(t *testing.T) {
	tmpDir := t.TempDir()
	fm, err := filesystem.NewFileManager(tmpDir, "", &stubConfirmer{})
	if err != nil {
		t.Fatal(err)
	}
	if err := fm.PrepareMigrationsFolder(context.Background()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := fm.WriteFile(ctx, "x.php", []byte("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
