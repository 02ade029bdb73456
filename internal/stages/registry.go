package stages

import (
	"fmt"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
)

// Registry maps stage names to stages so a single stage can be run on its own.
type Registry struct {
	stages map[string]Stage
	order  []string
}

// NewRegistry creates a new stage registry.
func NewRegistry() *Registry {
	return &Registry{
		stages: make(map[string]Stage),
	}
}

// Register adds a stage to the registry.
// Registering a name twice replaces the stage but keeps its position.
func (r *Registry) Register(stage Stage) {
	if _, ok := r.stages[stage.Name]; !ok {
		r.order = append(r.order, stage.Name)
	}
	r.stages[stage.Name] = stage
}

// Get returns the stage registered under name.
// Returns ErrUnsupportedType if the name is not registered.
func (r *Registry) Get(name string) (Stage, error) {
	stage, ok := r.stages[name]
	if !ok {
		return Stage{}, fmt.Errorf("%w: unknown stage %q", domain.ErrUnsupportedType, name)
	}
	return stage, nil
}

// Apply runs one named stage on text.
func (r *Registry) Apply(name, text string) (string, error) {
	stage, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return stage.Apply(text), nil
}

// Has returns true if a stage with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.stages[name]
	return ok
}

// Names returns all registered stage names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// List returns all registered stages in registration order.
func (r *Registry) List() []Stage {
	out := make([]Stage, len(r.order))
	for i, name := range r.order {
		out[i] = r.stages[name]
	}
	return out
}
