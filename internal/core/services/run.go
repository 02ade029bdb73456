package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driving"
	"github.com/custodia-labs/csvnorm/internal/logger"
)

// Ensure RunService implements the interface.
var _ driving.RunService = (*RunService)(nil)

// DegradedPrompt is shown before a run without the script stage.
const DegradedPrompt = "Continue without script normalisation? (y/N): "

// RunService runs the batch: extract archives, normalise tables, clean up.
type RunService struct {
	workspaces  driven.WorkspaceFactory
	extractor   driven.ArchiveExtractor
	reader      driven.TableReader
	writer      driven.TableWriter
	normalisers driven.NormaliserFactory
	confirmer   driven.Confirmer
	now         func() time.Time
}

// NewRunService creates a new run service.
// The confirmer may be nil, in which case a degraded run needs AssumeYes.
func NewRunService(
	workspaces driven.WorkspaceFactory,
	extractor driven.ArchiveExtractor,
	reader driven.TableReader,
	writer driven.TableWriter,
	normalisers driven.NormaliserFactory,
	confirmer driven.Confirmer,
) *RunService {
	return &RunService{
		workspaces:  workspaces,
		extractor:   extractor,
		reader:      reader,
		writer:      writer,
		normalisers: normalisers,
		confirmer:   confirmer,
		now:         time.Now,
	}
}

// Run executes one batch.
//
// Fatal conditions stop the run and return an error wrapping one of
// domain.ErrDeclined, domain.ErrInputDirNotFound, domain.ErrNoArchives or
// domain.ErrNoTables. Failures of single files are recorded in the summary
// and the run carries on.
//
//nolint:gocyclo // Orchestration function with necessary sequential steps
func (s *RunService) Run(
	ctx context.Context,
	settings domain.Settings,
	observer driving.RunObserver,
) (*domain.RunSummary, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if observer == nil {
		observer = driving.NopObserver{}
	}

	summary := &domain.RunSummary{
		ID:        uuid.NewString(),
		StartedAt: s.now(),
	}
	log := logger.With("run", summary.ID)

	// 1. Build the pipeline and confirm a degraded run
	normaliser := s.normalisers.New(settings.ScriptEnabled)
	mapper := NewNormaliseService(normaliser)
	summary.Degraded = mapper.Degraded()

	if summary.Degraded && settings.ScriptEnabled {
		log.Warn("script normalisation is unavailable; output will be less thorough")
		if !settings.AssumeYes {
			if err := s.confirm(); err != nil {
				return summary, err
			}
		}
	}
	log.Debug("stages: %v", mapper.Stages())

	// 2. Check directories
	ws, err := s.workspaces.Open(settings.InputDir, settings.ArchivePattern, settings.TablePattern)
	if err != nil {
		return summary, fmt.Errorf("open input directory: %w", err)
	}
	if !ws.Exists() {
		return summary, fmt.Errorf("%w: %s", domain.ErrInputDirNotFound, settings.InputDir)
	}
	if err := os.MkdirAll(settings.OutputDir, 0755); err != nil {
		return summary, fmt.Errorf("create output directory: %w", err)
	}

	// 3. Extract
	if err := s.extract(ctx, ws, summary, observer, log); err != nil {
		return summary, err
	}

	// 4. Normalise
	tables, err := ws.ListTables()
	if err != nil {
		return summary, fmt.Errorf("list tables: %w", err)
	}
	if len(tables) == 0 {
		return summary, fmt.Errorf("%w: %s in %s", domain.ErrNoTables, settings.TablePattern, settings.InputDir)
	}

	observer.PhaseStarted(domain.PhaseNormalise, len(tables))
	for _, path := range tables {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		observer.FileStarted(domain.PhaseNormalise, path)
		result := s.normaliseTable(ctx, mapper, path, settings)
		if result.OK() {
			log.Info("normalised %s -> %s", path, result.Output)
		} else {
			log.Warn("normalise %s: %v", path, result.Err)
		}
		summary.Tables = append(summary.Tables, result)
		observer.FileDone(result)
	}
	observer.PhaseDone(domain.PhaseNormalise, summary.Tables)

	// 5. Clean up
	if err := ctx.Err(); err != nil {
		return summary, err
	}
	cleaned := ws.Cleanup()
	observer.PhaseStarted(domain.PhaseCleanup, len(cleaned))
	for _, result := range cleaned {
		if !result.OK() {
			log.Warn("delete %s: %v", result.Path, result.Err)
		}
		observer.FileDone(result)
	}
	summary.Cleaned = cleaned
	observer.PhaseDone(domain.PhaseCleanup, cleaned)

	summary.FinishedAt = s.now()
	log.Info("run complete: %d/%d tables, %d files deleted",
		summary.Succeeded(), summary.Attempted(), summary.Deleted())
	return summary, nil
}

func (s *RunService) confirm() error {
	if s.confirmer == nil {
		return fmt.Errorf("%w: no way to confirm a degraded run", domain.ErrDeclined)
	}
	ok, err := s.confirmer.Confirm(DegradedPrompt)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDeclined, err)
	}
	if !ok {
		return domain.ErrDeclined
	}
	return nil
}

func (s *RunService) extract(
	ctx context.Context,
	ws driven.Workspace,
	summary *domain.RunSummary,
	observer driving.RunObserver,
	log *logger.Logger,
) error {
	archives, err := ws.ListArchives()
	if err != nil {
		return fmt.Errorf("list archives: %w", err)
	}
	if len(archives) == 0 {
		log.Warn("no archives in %s", ws.Root())
	}

	observer.PhaseStarted(domain.PhaseExtract, len(archives))
	for _, archive := range archives {
		if err := ctx.Err(); err != nil {
			return err
		}
		observer.FileStarted(domain.PhaseExtract, archive)
		paths, err := s.extractor.Extract(ctx, archive, ws.Root())
		result := domain.FileResult{
			Phase: domain.PhaseExtract,
			Path:  archive,
			Count: len(paths),
			Err:   err,
		}
		if err != nil {
			log.Warn("extract %s: %v", archive, err)
		} else {
			log.Debug("extracted %d files from %s", len(paths), archive)
		}
		summary.Archives = append(summary.Archives, result)
		summary.Extracted = append(summary.Extracted, paths...)
		observer.FileDone(result)
	}
	observer.PhaseDone(domain.PhaseExtract, summary.Archives)

	if len(summary.Extracted) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNoArchives, ws.Root())
	}
	return nil
}

// normaliseTable reads one table, maps the pipeline over it and writes it to
// the output directory under the same base name.
func (s *RunService) normaliseTable(
	ctx context.Context,
	mapper *NormaliseService,
	path string,
	settings domain.Settings,
) domain.FileResult {
	result := domain.FileResult{Phase: domain.PhaseNormalise, Path: path}

	record, err := s.reader.ReadTable(ctx, path, settings.Delimiter)
	if err != nil {
		result.Err = fmt.Errorf("read: %w", err)
		return result
	}

	out := filepath.Join(settings.OutputDir, filepath.Base(path))
	if err := s.writer.WriteTable(ctx, out, settings.Delimiter, mapper.NormaliseRecord(record)); err != nil {
		result.Err = fmt.Errorf("write: %w", err)
		return result
	}

	result.Output = out
	return result
}
