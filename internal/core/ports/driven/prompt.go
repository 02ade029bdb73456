package driven

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	// Confirm shows the prompt and returns true only for an explicit yes.
	// An error means no answer could be read; callers treat it as no.
	Confirm(prompt string) (bool, error)
}
