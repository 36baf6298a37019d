package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/example/laramig/internal/migration"
	"github.com/example/laramig/internal/models"
	"github.com/example/laramig/internal/ports/primary"
	"github.com/example/laramig/internal/ports/secondary"
)

// MigrationServiceImpl implements the MigrationService interface.
type MigrationServiceImpl struct {
	files   secondary.FileManager
	builder *migration.Builder
	logger  *zap.Logger
}

// NewMigrationService creates a new MigrationService with injected dependencies.
// The builder must write through files.
func NewMigrationService(files secondary.FileManager, builder *migration.Builder, logger *zap.Logger) *MigrationServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MigrationServiceImpl{
		files:   files,
		builder: builder,
		logger:  logger,
	}
}

// Generate writes one migration per entity view. Elements are handled one
// at a time; a failed write is collected and the batch moves on.
func (s *MigrationServiceImpl) Generate(ctx context.Context, elements []models.Element) (*primary.BatchResult, error) {
	result := &primary.BatchResult{Folder: s.files.MigrationsPath()}

	if err := s.files.PrepareMigrationsFolder(ctx); err != nil {
		if errors.Is(err, secondary.ErrCancelled) {
			s.logger.Info("generation cancelled", zap.String("folder", result.Folder))
			result.Cancelled = true
			return result, nil
		}
		return nil, fmt.Errorf("failed to prepare migrations folder: %w", err)
	}

	var errs *multierror.Error
	for i, elem := range elements {
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, err)
			break
		}

		file, err := s.builder.Generate(ctx, elem)
		if err != nil {
			s.logger.Error("migration failed", zap.Int("element", i), zap.String("table", tableName(elem)), zap.Error(err))
			result.Failed++
			errs = multierror.Append(errs, err)
			continue
		}
		if file == nil {
			s.logger.Debug("element skipped", zap.Int("element", i), zap.String("kind", string(elem.Kind)))
			result.Skipped++
			continue
		}

		s.logger.Debug("migration written", zap.String("table", file.Table), zap.String("file", file.Path))
		result.Written = append(result.Written, toMigrationFile(file))
	}

	return result, errs.ErrorOrNil()
}

// Preview renders every entity view without writing anything.
func (s *MigrationServiceImpl) Preview(ctx context.Context, elements []models.Element) ([]*primary.MigrationFile, error) {
	var files []*primary.MigrationFile
	for _, elem := range elements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file, err := s.builder.Preview(elem)
		if err != nil {
			return nil, err
		}
		if file != nil {
			files = append(files, toMigrationFile(file))
		}
	}
	return files, nil
}

func toMigrationFile(f *migration.GeneratedFile) *primary.MigrationFile {
	return &primary.MigrationFile{
		Table:     f.Table,
		ClassName: f.ClassName,
		FileName:  f.FileName,
		Path:      f.Path,
		Content:   f.Content,
	}
}

func tableName(elem models.Element) string {
	if elem.Table == nil {
		return ""
	}
	return elem.Table.Name
}

var _ primary.MigrationService = (*MigrationServiceImpl)(nil)
