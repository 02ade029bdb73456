package driven

import "github.com/custodia-labs/csvnorm/internal/core/domain"

// Workspace is the input directory of a batch run.
type Workspace interface {
	// Root returns the directory path.
	Root() string

	// Exists returns true if the directory exists.
	Exists() bool

	// ListArchives returns the archive files, sorted by name.
	ListArchives() ([]string, error)

	// ListTables returns the tabular files, sorted by name.
	ListTables() ([]string, error)

	// Cleanup deletes every regular file that is not an archive.
	// It is best effort: one result per file, failures do not stop it.
	Cleanup() []domain.FileResult
}

// WorkspaceFactory opens the input directory of a run.
type WorkspaceFactory interface {
	// Open returns a workspace rooted at root. The patterns select archive
	// and tabular files; an invalid pattern is an error.
	Open(root, archivePattern, tablePattern string) (Workspace, error)
}
