package mcp

import (
	"strings"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
)

// mockNormaliseService is a mock implementation of driving.NormaliseService.
// It upper-cases ASCII so tests can see which cells were touched.
type mockNormaliseService struct {
	stages   []string
	degraded bool
}

func (m *mockNormaliseService) NormaliseText(text string) string {
	return strings.ToUpper(text)
}

func (m *mockNormaliseService) NormaliseTextPtr(text *string) *string {
	if text == nil {
		return nil
	}
	out := m.NormaliseText(*text)
	return &out
}

func (m *mockNormaliseService) NormaliseRecord(record domain.Record) domain.Record {
	if record == nil {
		return nil
	}
	out := make(domain.Record, len(record))
	for i, row := range record {
		if row == nil {
			continue
		}
		out[i] = make(domain.Row, len(row))
		for j, cell := range row {
			out[i][j] = m.NormaliseText(cell)
		}
	}
	return out
}

func (m *mockNormaliseService) Stages() []string {
	return m.stages
}

func (m *mockNormaliseService) Degraded() bool {
	return m.degraded
}
