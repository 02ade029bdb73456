package driving

import (
	"context"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
)

// RunService executes a batch run: extract, normalise, clean up.
type RunService interface {
	// Run executes one batch with the given settings.
	// Fatal conditions return a domain error; per-file failures are
	// recorded in the summary instead.
	Run(ctx context.Context, settings domain.Settings, observer RunObserver) (*domain.RunSummary, error)
}

// RunObserver receives progress from a batch run.
// Implementations must not block; the run is synchronous.
type RunObserver interface {
	// PhaseStarted is called before a phase processes its files.
	PhaseStarted(phase domain.Phase, total int)

	// FileStarted is called before a file is processed.
	FileStarted(phase domain.Phase, path string)

	// FileDone is called after a file is processed.
	FileDone(result domain.FileResult)

	// PhaseDone is called after a phase with the results it produced.
	PhaseDone(phase domain.Phase, results []domain.FileResult)
}

// NopObserver discards all progress.
type NopObserver struct{}

func (NopObserver) PhaseStarted(domain.Phase, int) {}
func (NopObserver) FileStarted(domain.Phase, string) {}
func (NopObserver) FileDone(domain.FileResult) {}
func (NopObserver) PhaseDone(domain.Phase, []domain.FileResult) {}
