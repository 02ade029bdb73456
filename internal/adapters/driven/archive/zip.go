// Package archive extracts zip archives into the workspace.
package archive

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.ArchiveExtractor = (*Extractor)(nil)

// Extractor unpacks zip archives.
type Extractor struct{}

// New creates a new zip extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract unpacks every file in the archive into destDir, keeping the
// archive's directory layout, and returns the written paths in archive order.
// Directory entries are created but not returned.
//
// Every entry is checked before anything is written: if one would land
// outside destDir the archive is rejected with domain.ErrUnsafeArchiveEntry.
func (e *Extractor) Extract(ctx context.Context, archivePath, destDir string) ([]string, error) {
	// Insecure names are rejected below with a domain error.
	reader, err := zip.OpenReader(archivePath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	targets := make([]string, len(reader.File))
	for i, f := range reader.File {
		target, err := safeJoin(destDir, entryName(f))
		if err != nil {
			return nil, err
		}
		targets[i] = target
	}

	var written []string
	for i, f := range reader.File {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(targets[i], 0755); err != nil {
				return written, err
			}
			continue
		}

		if err := extractFile(f, targets[i]); err != nil {
			return written, fmt.Errorf("extract %s: %w", f.Name, err)
		}
		written = append(written, targets[i])
	}

	return written, nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// entryName returns the entry's name as UTF-8. Archives made on Japanese
// Windows store names in Shift_JIS without the UTF-8 flag.
func entryName(f *zip.File) string {
	if !f.NonUTF8 || utf8.ValidString(f.Name) {
		return f.Name
	}
	decoded, err := japanese.ShiftJIS.NewDecoder().String(f.Name)
	if err != nil {
		return f.Name
	}
	return decoded
}

// safeJoin joins name onto dir, failing if the result escapes dir.
// Backslashes are treated as separators.
func safeJoin(dir, name string) (string, error) {
	name = strings.ReplaceAll(name, `\`, "/")
	if name == "" || strings.HasPrefix(name, "/") || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsafeArchiveEntry, name)
	}

	target := filepath.Join(dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsafeArchiveEntry, name)
	}
	return target, nil
}
