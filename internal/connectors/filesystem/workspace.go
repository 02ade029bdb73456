// Package filesystem provides the input directory of a run: listing archives
// and tables with glob patterns, deleting transient files and watching for
// new archives.
package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
)

// Ensure Workspace implements the interface.
var _ driven.Workspace = (*Workspace)(nil)

// Ensure Factory implements the interface.
var _ driven.WorkspaceFactory = Factory{}

// Workspace is a directory holding archives and the files extracted from them.
type Workspace struct {
	root           string
	archivePattern string
	tablePattern   string
}

// New creates a workspace. Patterns are doublestar globs relative to root.
func New(root, archivePattern, tablePattern string) (*Workspace, error) {
	for _, p := range []string{archivePattern, tablePattern} {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w: bad pattern %q", domain.ErrInvalidInput, p)
		}
	}
	return &Workspace{
		root:           root,
		archivePattern: archivePattern,
		tablePattern:   tablePattern,
	}, nil
}

// Factory opens workspaces on the local filesystem.
type Factory struct{}

// Open returns a workspace rooted at root.
func (Factory) Open(root, archivePattern, tablePattern string) (driven.Workspace, error) {
	return New(root, archivePattern, tablePattern)
}

// Root returns the directory path.
func (w *Workspace) Root() string {
	return w.root
}

// Exists returns true if the root is an existing directory.
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.root)
	return err == nil && info.IsDir()
}

// ListArchives returns the archive files, sorted by name.
func (w *Workspace) ListArchives() ([]string, error) {
	return w.list(w.archivePattern)
}

// ListTables returns the tabular files, sorted by name.
func (w *Workspace) ListTables() ([]string, error) {
	return w.list(w.tablePattern)
}

func (w *Workspace) list(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(w.root), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		if isHidden(m) {
			continue
		}
		path := filepath.Join(w.root, filepath.FromSlash(m))
		if !regularFile(path) {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// IsArchive reports whether name matches the archive pattern, ignoring case.
// name is relative to the root.
func (w *Workspace) IsArchive(name string) bool {
	ok, err := doublestar.Match(strings.ToLower(w.archivePattern), strings.ToLower(filepath.ToSlash(name)))
	return err == nil && ok
}

// Cleanup deletes every regular file directly under the root that is not an
// archive. Subdirectories are left alone. A failed deletion is recorded and
// the rest carry on.
func (w *Workspace) Cleanup() []domain.FileResult {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return []domain.FileResult{{Phase: domain.PhaseCleanup, Path: w.root, Err: err}}
	}

	var results []domain.FileResult
	for _, entry := range entries {
		if !entry.Type().IsRegular() || w.IsArchive(entry.Name()) {
			continue
		}
		path := filepath.Join(w.root, entry.Name())
		results = append(results, domain.FileResult{
			Phase: domain.PhaseCleanup,
			Path:  path,
			Err:   os.Remove(path),
		})
	}
	return results
}

// isHidden returns true if any element of path starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool { return r == '/' }) {
		if part != "." && part != ".." && strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// regularFile reports whether path is an existing regular file.
func regularFile(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode().Type() == fs.FileMode(0)
}
