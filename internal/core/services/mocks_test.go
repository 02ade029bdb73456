package services

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
)

// mockTextNormaliser counts calls and returns its input.
type mockTextNormaliser struct {
	calls    int
	degraded bool
}

func (m *mockTextNormaliser) Normalise(text string) string {
	m.calls++
	return text
}

func (m *mockTextNormaliser) Stages() []string { return []string{"mock"} }
func (m *mockTextNormaliser) Degraded() bool   { return m.degraded }

// mockWorkspace implements driven.Workspace over fixed listings.
type mockWorkspace struct {
	root       string
	missing    bool
	archives   []string
	tables     []string
	archiveErr error
	tableErr   error
	cleaned    []domain.FileResult
	cleanups   int
}

func (m *mockWorkspace) Root() string                    { return m.root }
func (m *mockWorkspace) Exists() bool                    { return !m.missing }
func (m *mockWorkspace) ListArchives() ([]string, error) { return m.archives, m.archiveErr }
func (m *mockWorkspace) ListTables() ([]string, error)   { return m.tables, m.tableErr }

func (m *mockWorkspace) Cleanup() []domain.FileResult {
	m.cleanups++
	return m.cleaned
}

type mockWorkspaceFactory struct {
	ws   *mockWorkspace
	err  error
	args []string
}

func (m *mockWorkspaceFactory) Open(root, archivePattern, tablePattern string) (driven.Workspace, error) {
	m.args = []string{root, archivePattern, tablePattern}
	if m.err != nil {
		return nil, m.err
	}
	m.ws.root = root
	return m.ws, nil
}

// mockExtractor returns a fixed listing per archive.
type mockExtractor struct {
	extracted map[string][]string
	errs      map[string]error
	calls     []string
}

func (m *mockExtractor) Extract(_ context.Context, archivePath, _ string) ([]string, error) {
	m.calls = append(m.calls, archivePath)
	if err := m.errs[archivePath]; err != nil {
		return nil, err
	}
	return m.extracted[archivePath], nil
}

// mockTables is an in-memory table reader and writer.
type mockTables struct {
	records   map[string]domain.Record
	readErrs  map[string]error
	writeErrs map[string]error
	written   map[string]domain.Record
	delims    []rune
}

func newMockTables() *mockTables {
	return &mockTables{
		records:   make(map[string]domain.Record),
		readErrs:  make(map[string]error),
		writeErrs: make(map[string]error),
		written:   make(map[string]domain.Record),
	}
}

func (m *mockTables) ReadTable(_ context.Context, path string, delimiter rune) (domain.Record, error) {
	m.delims = append(m.delims, delimiter)
	if err := m.readErrs[path]; err != nil {
		return nil, err
	}
	record, ok := m.records[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fs.ErrNotExist, path)
	}
	return record, nil
}

func (m *mockTables) WriteTable(_ context.Context, path string, _ rune, record domain.Record) error {
	if err := m.writeErrs[path]; err != nil {
		return err
	}
	m.written[path] = record
	return nil
}

// mockConfirmer answers every prompt the same way.
type mockConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (m *mockConfirmer) Confirm(prompt string) (bool, error) {
	m.prompts = append(m.prompts, prompt)
	return m.answer, m.err
}

// recordingObserver records progress callbacks as strings.
type recordingObserver struct {
	events []string
}

func (r *recordingObserver) PhaseStarted(phase domain.Phase, total int) {
	r.events = append(r.events, fmt.Sprintf("start %s %d", phase, total))
}

func (r *recordingObserver) FileStarted(phase domain.Phase, path string) {
	r.events = append(r.events, fmt.Sprintf("file %s %s", phase, path))
}

func (r *recordingObserver) FileDone(result domain.FileResult) {
	r.events = append(r.events, fmt.Sprintf("done %s %s %t", result.Phase, result.Path, result.OK()))
}

func (r *recordingObserver) PhaseDone(phase domain.Phase, results []domain.FileResult) {
	r.events = append(r.events, fmt.Sprintf("end %s %d", phase, len(results)))
}
