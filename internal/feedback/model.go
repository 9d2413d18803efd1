package feedback

// CheckpointCriteria is one editable checkpoint in the feedback flow.
// Criteria order matters for display only; scoring treats the list as an
// unordered set of cues.
type CheckpointCriteria struct {
	Description  string   `json:"description" yaml:"description"`
	Criteria     []string `json:"criteria" yaml:"criteria"`
	Verification string   `json:"verification" yaml:"verification"`
	Answer       string   `json:"answer,omitempty" yaml:"answer,omitempty"`
}

// Model is the full set of checkpoints a learner refines and answers.
type Model struct {
	Checkpoints []CheckpointCriteria `json:"checkpoints" yaml:"checkpoints"`
}

// DefaultModel returns the starter model shown before any edits.
func DefaultModel() Model {
	return Model{
		Checkpoints: []CheckpointCriteria{
			{
				Description:  "Understand core concept",
				Criteria:     []string{"Explain simply"},
				Verification: "Teach back",
			},
		},
	}
}

// Clone returns a deep copy of m.
func (m Model) Clone() Model {
	if m.Checkpoints == nil {
		return Model{}
	}
	out := Model{Checkpoints: make([]CheckpointCriteria, len(m.Checkpoints))}
	for i, cp := range m.Checkpoints {
		out.Checkpoints[i] = cp.clone()
	}
	return out
}

func (c CheckpointCriteria) clone() CheckpointCriteria {
	if c.Criteria != nil {
		c.Criteria = append([]string(nil), c.Criteria...)
	}
	return c
}

// Len returns the number of checkpoints.
func (m Model) Len() int {
	return len(m.Checkpoints)
}
