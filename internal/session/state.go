package session

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/abhisek/feynman/internal/checkpoints"
	"github.com/abhisek/feynman/internal/feedback"
)

// DefaultMaxNotesChars is the default notes length limit.
const DefaultMaxNotesChars = 1000

var (
	// ErrBlankNotes is returned when notes contain only whitespace.
	ErrBlankNotes = errors.New("notes are blank")
	// ErrNotesTooLong is returned when notes exceed the configured limit.
	ErrNotesTooLong = errors.New("notes exceed the character limit")
)

// Step is the screen a learning session is on.
type Step int

const (
	StepHome        Step = iota // Landing menu
	StepNotes                   // Entering notes
	StepProcessing              // Notes submitted, checkpoints pending
	StepCheckpoints             // Self-assessing checkpoints
	StepExplanation             // Reading an explanation
	StepFeedback                // Refining criteria and answers
)

var stepNames = [...]string{"home", "notes", "processing", "checkpoints", "explanation", "feedback"}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "unknown"
	}
	return stepNames[s]
}

// State tracks one learner's pass through notes, checkpoints and feedback.
type State struct {
	// ID identifies the session in logs.
	ID string

	// Notes is the last submitted notes text.
	Notes string

	// Checkpoints is replaced wholesale on each notes submission.
	Checkpoints []checkpoints.Checkpoint

	// Step is the current step.
	Step Step

	// CurrentCheckpointID is the checkpoint whose explanation was requested,
	// 0 when none.
	CurrentCheckpointID int

	// Feedback is the criterion model being refined on the feedback step.
	Feedback feedback.Model

	// Accepted is the set of feedback checkpoints the learner accepted.
	Accepted feedback.Accepted

	// MaxNotesChars bounds submitted notes. Zero means DefaultMaxNotesChars.
	MaxNotesChars int

	generator *checkpoints.Generator
}

// New creates a session at the home step. A nil generator uses the default
// random description picker.
func New(gen *checkpoints.Generator) *State {
	if gen == nil {
		gen = checkpoints.NewGenerator(nil)
	}
	return &State{
		ID:            uuid.New().String(),
		Step:          StepHome,
		Feedback:      feedback.DefaultModel(),
		MaxNotesChars: DefaultMaxNotesChars,
		generator:     gen,
	}
}

// ValidateNotes applies the caller-side notes policy.
func (s *State) ValidateNotes(notes string) error {
	if strings.TrimSpace(notes) == "" {
		return ErrBlankNotes
	}
	limit := s.MaxNotesChars
	if limit <= 0 {
		limit = DefaultMaxNotesChars
	}
	if utf8.RuneCountInString(notes) > limit {
		return ErrNotesTooLong
	}
	return nil
}

// StartNotes moves to the notes step.
func (s *State) StartNotes() {
	s.Step = StepNotes
}

// BeginProcessing marks notes as submitted while checkpoints are prepared.
func (s *State) BeginProcessing(notes string) error {
	if err := s.ValidateNotes(notes); err != nil {
		return err
	}
	s.Step = StepProcessing
	return nil
}

// SubmitNotes generates checkpoints for notes, replacing any previous set,
// and moves to the checkpoints step.
func (s *State) SubmitNotes(notes string) error {
	if err := s.ValidateNotes(notes); err != nil {
		return err
	}
	s.Notes = notes
	s.Checkpoints = s.generator.Generate(notes)
	s.CurrentCheckpointID = 0
	s.Step = StepCheckpoints
	return nil
}

// ToggleCompleted flips the completed flag of checkpoint id.
// It reports whether the checkpoint exists.
func (s *State) ToggleCompleted(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.Checkpoints[i].Completed = !s.Checkpoints[i].Completed
	return true
}

// DontKnow opens the explanation step for checkpoint id.
func (s *State) DontKnow(id int) bool {
	if s.indexOf(id) < 0 {
		return false
	}
	s.CurrentCheckpointID = id
	s.Step = StepExplanation
	return true
}

// Understood marks the current checkpoint completed with an explanation
// requested, and returns to the checkpoints step. Without a current
// checkpoint it does nothing.
func (s *State) Understood() bool {
	i := s.indexOf(s.CurrentCheckpointID)
	if s.CurrentCheckpointID == 0 || i < 0 {
		return false
	}
	s.Checkpoints[i].Completed = true
	s.Checkpoints[i].ExplanationRequested = true
	s.Step = StepCheckpoints
	return true
}

// BackToCheckpoints returns from the explanation or feedback steps.
func (s *State) BackToCheckpoints() {
	s.Step = StepCheckpoints
}

// OpenFeedback moves to the feedback step.
func (s *State) OpenFeedback() {
	s.Step = StepFeedback
}

// LeaveFeedback returns to checkpoints when there are any, home otherwise.
func (s *State) LeaveFeedback() {
	if len(s.Checkpoints) > 0 {
		s.Step = StepCheckpoints
		return
	}
	s.Step = StepHome
}

// CurrentCheckpoint returns the checkpoint an explanation was requested for.
func (s *State) CurrentCheckpoint() (checkpoints.Checkpoint, bool) {
	i := s.indexOf(s.CurrentCheckpointID)
	if i < 0 {
		return checkpoints.Checkpoint{}, false
	}
	return s.Checkpoints[i], true
}

// Progress returns completed and total checkpoint counts.
func (s *State) Progress() (completed, total int) {
	for _, cp := range s.Checkpoints {
		if cp.Completed {
			completed++
		}
	}
	return completed, len(s.Checkpoints)
}

// ProgressPercent returns the completed share rounded to a whole percent.
func (s *State) ProgressPercent() int {
	completed, total := s.Progress()
	if total == 0 {
		return 0
	}
	return (completed*100 + total/2) / total
}

// AllCompleted reports whether every checkpoint is completed.
func (s *State) AllCompleted() bool {
	completed, total := s.Progress()
	return total > 0 && completed == total
}

// Reset clears notes and checkpoints and returns home. The session keeps
// its ID.
func (s *State) Reset() {
	s.Notes = ""
	s.Checkpoints = nil
	s.CurrentCheckpointID = 0
	s.Step = StepHome
}

func (s *State) indexOf(id int) int {
	for i, cp := range s.Checkpoints {
		if cp.ID == id {
			return i
		}
	}
	return -1
}
