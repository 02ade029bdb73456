package driven

// ScriptNormaliser is the optional first stage of the cell pipeline.
// It folds script-specific width and variant forms before the fixed rules run.
type ScriptNormaliser interface {
	// Name identifies the implementation in logs.
	Name() string

	// Available returns false for the absent variant.
	// The pipeline skips the stage when it is unavailable.
	Available() bool

	// Normalise transforms text. It never fails.
	Normalise(text string) string
}

// TextNormaliser applies the full ordered rule pipeline to one cell.
type TextNormaliser interface {
	// Normalise returns the normalised text. Empty input is returned unchanged.
	Normalise(text string) string

	// Stages returns the names of the stages that run, in order.
	Stages() []string

	// Degraded returns true when the optional script stage is unavailable.
	Degraded() bool
}

// NormaliserFactory builds the cell pipeline for one run.
type NormaliserFactory interface {
	// New returns a pipeline. When scriptEnabled is false, or no script
	// normaliser is available, the result is degraded.
	New(scriptEnabled bool) TextNormaliser
}
