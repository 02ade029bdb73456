package driven

import "context"

// ArchiveExtractor unpacks an archive file.
type ArchiveExtractor interface {
	// Extract writes the archive's entries into destDir and returns the
	// paths written, in archive order. Entries that would land outside
	// destDir fail the whole archive with domain.ErrUnsafeArchiveEntry.
	Extract(ctx context.Context, archivePath, destDir string) ([]string, error)
}
