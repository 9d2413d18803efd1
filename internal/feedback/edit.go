package feedback

// Editing operations never modify the receiver; each returns a new Model.
// Out-of-range indexes return an unchanged copy.

// AddCheckpoint appends an empty checkpoint.
func (m Model) AddCheckpoint() Model {
	out := m.Clone()
	out.Checkpoints = append(out.Checkpoints, CheckpointCriteria{Criteria: []string{}})
	return out
}

// RemoveCheckpoint drops the checkpoint at i.
func (m Model) RemoveCheckpoint(i int) Model {
	out := m.Clone()
	if !m.valid(i) {
		return out
	}
	out.Checkpoints = append(out.Checkpoints[:i], out.Checkpoints[i+1:]...)
	return out
}

// SetDescription replaces the description of checkpoint i.
func (m Model) SetDescription(i int, v string) Model {
	return m.update(i, func(c *CheckpointCriteria) { c.Description = v })
}

// SetVerification replaces the verification method of checkpoint i.
func (m Model) SetVerification(i int, v string) Model {
	return m.update(i, func(c *CheckpointCriteria) { c.Verification = v })
}

// SetAnswer replaces the learner answer of checkpoint i.
func (m Model) SetAnswer(i int, v string) Model {
	return m.update(i, func(c *CheckpointCriteria) { c.Answer = v })
}

// AddCriterion appends criterion v to checkpoint i.
func (m Model) AddCriterion(i int, v string) Model {
	return m.update(i, func(c *CheckpointCriteria) { c.Criteria = append(c.Criteria, v) })
}

// SetCriterion replaces criterion j of checkpoint i.
func (m Model) SetCriterion(i, j int, v string) Model {
	return m.update(i, func(c *CheckpointCriteria) {
		if j >= 0 && j < len(c.Criteria) {
			c.Criteria[j] = v
		}
	})
}

// RemoveCriterion drops criterion j of checkpoint i.
func (m Model) RemoveCriterion(i, j int) Model {
	return m.update(i, func(c *CheckpointCriteria) {
		if j >= 0 && j < len(c.Criteria) {
			c.Criteria = append(c.Criteria[:j], c.Criteria[j+1:]...)
		}
	})
}

func (m Model) update(i int, fn func(*CheckpointCriteria)) Model {
	out := m.Clone()
	if m.valid(i) {
		fn(&out.Checkpoints[i])
	}
	return out
}

func (m Model) valid(i int) bool {
	return i >= 0 && i < len(m.Checkpoints)
}
