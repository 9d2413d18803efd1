package lessons

// IllustrationType distinguishes analogies from concrete examples.
type IllustrationType string

const (
	TypeAnalogy IllustrationType = "analogy"
	TypeExample IllustrationType = "example"
)

// ExplanationContent is the multi-part explanation shown when a learner
// cannot explain a checkpoint.
type ExplanationContent struct {
	// SimplifiedExplanation always holds exactly five sentences.
	SimplifiedExplanation []string `json:"simplified_explanation"`

	// KeyConcepts holds at most MaxKeyConcepts definitions.
	KeyConcepts []KeyConcept `json:"key_concepts"`

	// AnalogiesAndExamples always holds exactly three entries.
	AnalogiesAndExamples []Illustration `json:"analogies_and_examples"`
}

// KeyConcept is a term with a templated definition.
type KeyConcept struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Illustration is an analogy or example with the reason it helps.
type Illustration struct {
	Type        IllustrationType `json:"type"`
	Content     string           `json:"content"`
	Explanation string           `json:"explanation,omitempty"`
}
