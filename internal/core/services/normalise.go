package services

import (
	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driving"
)

// Ensure NormaliseService implements the interface.
var _ driving.NormaliseService = (*NormaliseService)(nil)

// NormaliseService maps the cell pipeline over text and records.
type NormaliseService struct {
	normaliser driven.TextNormaliser
}

// NewNormaliseService creates a new normalise service.
func NewNormaliseService(normaliser driven.TextNormaliser) *NormaliseService {
	return &NormaliseService{normaliser: normaliser}
}

// NormaliseText normalises a single cell value.
func (s *NormaliseService) NormaliseText(text string) string {
	if text == "" {
		return text
	}
	return s.normaliser.Normalise(text)
}

// NormaliseTextPtr normalises an optional value. Nil is returned unchanged.
func (s *NormaliseService) NormaliseTextPtr(text *string) *string {
	if text == nil {
		return nil
	}
	out := s.NormaliseText(*text)
	return &out
}

// NormaliseRecord returns a new record of identical shape with every cell
// normalised. The input record is not modified.
func (s *NormaliseService) NormaliseRecord(record domain.Record) domain.Record {
	if record == nil {
		return nil
	}
	out := make(domain.Record, len(record))
	for i, row := range record {
		if row == nil {
			continue
		}
		mapped := make(domain.Row, len(row))
		for j, cell := range row {
			mapped[j] = s.NormaliseText(cell)
		}
		out[i] = mapped
	}
	return out
}

// Stages returns the stage names that run, in order.
func (s *NormaliseService) Stages() []string {
	return s.normaliser.Stages()
}

// Degraded returns true when the optional script stage is unavailable.
func (s *NormaliseService) Degraded() bool {
	return s.normaliser.Degraded()
}
