package session

import (
	"github.com/abhisek/feynman/internal/feedback"
	"github.com/abhisek/feynman/internal/mastery"
)

// EditFeedback replaces the feedback model with edit(current).
func (s *State) EditFeedback(edit func(feedback.Model) feedback.Model) {
	s.Feedback = edit(s.Feedback)
}

// RemoveFeedbackCheckpoint drops feedback checkpoint i and keeps the
// accepted set aligned with the remaining indexes.
func (s *State) RemoveFeedbackCheckpoint(i int) {
	if i < 0 || i >= s.Feedback.Len() {
		return
	}
	s.Feedback = s.Feedback.RemoveCheckpoint(i)
	s.Accepted = s.Accepted.Removed(i)
}

// ToggleAccepted flips acceptance of feedback checkpoint i.
func (s *State) ToggleAccepted(i int) {
	if i < 0 || i >= s.Feedback.Len() {
		return
	}
	s.Accepted = s.Accepted.Toggle(i)
}

// LoadFeedback replaces the feedback model and clears acceptance.
func (s *State) LoadFeedback(m feedback.Model) {
	s.Feedback = m
	s.Accepted = feedback.Accepted{}
}

// Understanding scores the current feedback model.
func (s *State) Understanding() mastery.Report {
	return mastery.Score(s.Feedback)
}
