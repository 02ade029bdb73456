package driven

import (
	"context"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
)

// TableReader reads a delimited text file into a record.
type TableReader interface {
	// ReadTable parses the file at path. Rows may have differing lengths.
	ReadTable(ctx context.Context, path string, delimiter rune) (domain.Record, error)
}

// TableWriter writes a record as a delimited text file.
type TableWriter interface {
	// WriteTable creates or truncates the file at path.
	WriteTable(ctx context.Context, path string, delimiter rune, record domain.Record) error
}
