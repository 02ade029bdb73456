package driving

import "github.com/custodia-labs/csvnorm/internal/core/domain"

// NormaliseService applies the cell pipeline to text and records.
type NormaliseService interface {
	// NormaliseText normalises a single cell value.
	NormaliseText(text string) string

	// NormaliseTextPtr normalises an optional value. Nil passes through.
	NormaliseTextPtr(text *string) *string

	// NormaliseRecord returns a new record of identical shape with every
	// cell normalised. The input is not modified.
	NormaliseRecord(record domain.Record) domain.Record

	// Stages returns the stage names that run, in order.
	Stages() []string

	// Degraded returns true when the optional script stage is unavailable.
	Degraded() bool
}
