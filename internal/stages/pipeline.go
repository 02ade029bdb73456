// Package stages composes the normalisation rules into the ordered cell
// pipeline and provides a registry for running stages by name.
package stages

import (
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
	"github.com/custodia-labs/csvnorm/internal/normalisers/rules"
)

// Ensure Pipeline implements the interface.
var _ driven.TextNormaliser = (*Pipeline)(nil)

// Stage is one named step of the cell pipeline.
type Stage struct {
	// Name identifies the stage in listings and the registry.
	Name string

	// Description is a one-line summary for listings.
	Description string

	// Apply is the transformation. It must be total.
	Apply rules.Rule
}

// Pipeline chains stages and runs them in order on each cell.
// It implements the TextNormaliser interface.
type Pipeline struct {
	stages   []Stage
	degraded bool
}

// NewPipeline creates a new pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{
		stages: append([]Stage(nil), stages...),
	}
}

// Normalise runs the text through every stage in order.
// Empty text is returned unchanged without running any stage.
func (p *Pipeline) Normalise(text string) string {
	if text == "" {
		return text
	}
	for _, stage := range p.stages {
		text = stage.Apply(text)
	}
	return text
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, stage := range p.stages {
		names[i] = stage.Name
	}
	return names
}

// Degraded returns true when the optional script stage was left out.
func (p *Pipeline) Degraded() bool {
	return p.degraded
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}
