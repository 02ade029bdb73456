package mcp

import (
	"github.com/custodia-labs/csvnorm/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Normalise applies the cell pipeline.
	Normalise driving.NormaliseService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Normalise == nil {
		return ErrMissingNormaliseService
	}
	return nil
}
