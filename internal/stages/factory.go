package stages

import "github.com/custodia-labs/csvnorm/internal/core/ports/driven"

// Ensure Factory implements the interface.
var _ driven.NormaliserFactory = (*Factory)(nil)

// Factory builds default pipelines around one script normaliser.
type Factory struct {
	script driven.ScriptNormaliser
}

// NewFactory creates a factory. sn may be nil.
func NewFactory(sn driven.ScriptNormaliser) *Factory {
	return &Factory{script: sn}
}

// New returns the default pipeline, without the script stage when
// scriptEnabled is false.
func (f *Factory) New(scriptEnabled bool) driven.TextNormaliser {
	if !scriptEnabled {
		return Default(nil)
	}
	return Default(f.script)
}
