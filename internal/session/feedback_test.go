package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/feynman/internal/feedback"
	"github.com/abhisek/feynman/internal/mastery"
)

func TestEditFeedback(t *testing.T) {
	s := newTestState()
	s.EditFeedback(func(m feedback.Model) feedback.Model {
		return m.SetAnswer(0, "Explain simply means teaching it plainly")
	})

	r := s.Understanding()
	assert.Equal(t, 46, r.OverallScore)
	assert.Equal(t, mastery.LevelEmerging, r.OverallLevel)
}

func TestRemoveFeedbackCheckpoint_ShiftsAccepted(t *testing.T) {
	s := newTestState()
	s.EditFeedback(func(m feedback.Model) feedback.Model {
		return m.AddCheckpoint().AddCheckpoint()
	})
	s.ToggleAccepted(0)
	s.ToggleAccepted(2)

	s.RemoveFeedbackCheckpoint(1)
	assert.Equal(t, 2, s.Feedback.Len())
	assert.Equal(t, []int{0, 1}, s.Accepted.Indexes())

	s.RemoveFeedbackCheckpoint(9)
	assert.Equal(t, 2, s.Feedback.Len())
}

func TestToggleAccepted_OutOfRange(t *testing.T) {
	s := newTestState()
	s.ToggleAccepted(4)
	assert.Zero(t, s.Accepted.Len())
}

func TestLoadFeedback_ClearsAccepted(t *testing.T) {
	s := newTestState()
	s.ToggleAccepted(0)
	s.LoadFeedback(feedback.Model{})
	assert.Zero(t, s.Accepted.Len())
	assert.Equal(t, mastery.LevelNovice, s.Understanding().OverallLevel)
}
