package domain

// Cell is a single text value from a tabular file. It may be empty.
type Cell = string

// Row is an ordered sequence of cells.
type Row []Cell

// Record is an ordered sequence of rows, the contents of one tabular file.
type Record []Row

// Shape describes the row count and per-row cell counts of a Record.
type Shape struct {
	Rows    int
	Columns []int
}

// Shape returns the shape of the record.
func (r Record) Shape() Shape {
	cols := make([]int, len(r))
	for i, row := range r {
		cols[i] = len(row)
	}
	return Shape{Rows: len(r), Columns: cols}
}

// Equal reports whether two shapes have the same rows and column counts.
func (s Shape) Equal(other Shape) bool {
	if s.Rows != other.Rows || len(s.Columns) != len(other.Columns) {
		return false
	}
	for i := range s.Columns {
		if s.Columns[i] != other.Columns[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for i, row := range r {
		if row == nil {
			continue
		}
		out[i] = append(Row(nil), row...)
	}
	return out
}

// ToStrings converts the record to plain string rows.
func (r Record) ToStrings() [][]string {
	out := make([][]string, len(r))
	for i, row := range r {
		out[i] = []string(row)
	}
	return out
}

// RecordFromStrings wraps plain string rows as a Record without copying cells.
func RecordFromStrings(rows [][]string) Record {
	out := make(Record, len(rows))
	for i, row := range rows {
		out[i] = Row(row)
	}
	return out
}
