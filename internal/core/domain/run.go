package domain

import "time"

// Phase identifies a stage of a batch run.
type Phase string

// Run phases, in execution order.
const (
	PhaseExtract   Phase = "extract"
	PhaseNormalise Phase = "normalise"
	PhaseCleanup   Phase = "cleanup"
)

// FileResult is the outcome of one file within a phase.
type FileResult struct {
	// Phase is the phase the file was processed in.
	Phase Phase

	// Path is the input path of the file.
	Path string

	// Output is the written path (normalise phase only).
	Output string

	// Count is the number of files an archive yielded (extract phase only).
	Count int

	// Err is non-nil when the file failed.
	Err error
}

// OK returns true if the file was processed without error.
func (r FileResult) OK() bool {
	return r.Err == nil
}

// RunSummary is the outcome of one batch run.
type RunSummary struct {
	// ID identifies the run in logs.
	ID string

	// Degraded is true when the script normalisation stage was unavailable.
	Degraded bool

	// Archives holds one result per archive found.
	Archives []FileResult

	// Extracted lists every path the archives yielded.
	Extracted []string

	// Tables holds one result per tabular file normalised.
	Tables []FileResult

	// Cleaned holds one result per file the cleanup phase tried to delete.
	Cleaned []FileResult

	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded returns the number of tabular files normalised and written.
func (s *RunSummary) Succeeded() int {
	return countOK(s.Tables)
}

// Attempted returns the number of tabular files the run tried to normalise.
func (s *RunSummary) Attempted() int {
	return len(s.Tables)
}

// Deleted returns the number of files the cleanup phase removed.
func (s *RunSummary) Deleted() int {
	return countOK(s.Cleaned)
}

// Duration returns how long the run took.
func (s *RunSummary) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

func countOK(results []FileResult) int {
	n := 0
	for _, r := range results {
		if r.OK() {
			n++
		}
	}
	return n
}
