// Package csvfile reads and writes delimited text tables.
//
// Input must be UTF-8 and may start with a byte order mark; a UTF-16 file
// with a byte order mark is decoded as well. Output is UTF-8 without a BOM,
// with CRLF line endings and minimal quoting.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
)

// Ensure Codec implements the interfaces.
var (
	_ driven.TableReader = (*Codec)(nil)
	_ driven.TableWriter = (*Codec)(nil)
)

// Codec reads and writes tables on the local filesystem.
type Codec struct{}

// New creates a new codec.
func New() *Codec {
	return &Codec{}
}

// ReadTable parses the file at path. Rows may differ in length.
// Invalid UTF-8 is an error wrapping domain.ErrDecode.
func (c *Codec) ReadTable(ctx context.Context, path string, delimiter rune) (domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, delimiter)
}

// Decode parses a table from r.
func Decode(r io.Reader, delimiter rune) (domain.Record, error) {
	// Strips a UTF-8 BOM, converts UTF-16 with a BOM, passes the rest through.
	reader := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	record := domain.Record{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, cell := range row {
			if !utf8.ValidString(cell) {
				line, _ := reader.FieldPos(0)
				return nil, fmt.Errorf("%w: invalid UTF-8 on line %d", domain.ErrDecode, line)
			}
		}
		record = append(record, domain.Row(row))
	}
	return record, nil
}

// WriteTable creates or truncates the file at path and writes the record.
func (c *Codec) WriteTable(ctx context.Context, path string, delimiter rune, record domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, delimiter, record); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes a table to w.
func Encode(w io.Writer, delimiter rune, record domain.Record) error {
	writer := csv.NewWriter(w)
	writer.Comma = delimiter
	writer.UseCRLF = true

	for _, row := range record {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
