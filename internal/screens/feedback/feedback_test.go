package feedback

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/feynman/internal/checkpoints"
	fbmodel "github.com/abhisek/feynman/internal/feedback"
	"github.com/abhisek/feynman/internal/logging"
	"github.com/abhisek/feynman/internal/router"
	"github.com/abhisek/feynman/internal/screens"
	"github.com/abhisek/feynman/internal/session"
)

type firstPicker struct{}

func (firstPicker) Pick(string, int, int) int { return 0 }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

var ctrlS = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}

func testScreen(save func(fbmodel.Model) error) (*FeedbackScreen, *session.State) {
	st := session.New(checkpoints.NewGenerator(firstPicker{}))
	st.OpenFeedback()
	return New(screens.Deps{Session: st, Logger: logging.Nop(), SaveModel: save}), st
}

func TestNew_RowsFromDefaultModel(t *testing.T) {
	s, _ := testScreen(nil)

	kinds := []rowKind{rowDescription, rowCriterion, rowVerification, rowAnswer}
	require.Len(t, s.rows, len(kinds))
	for i, k := range kinds {
		assert.Equal(t, k, s.rows[i].kind, "row %d", i)
	}
	assert.Equal(t, 0, s.cursor)
	assert.Equal(t, "Feedback", s.Title())
}

func TestCursorMovementIsBounded(t *testing.T) {
	s, _ := testScreen(nil)

	s.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 0, s.cursor)

	for range 10 {
		s.Update(specialKey(tea.KeyDown))
	}
	assert.Equal(t, len(s.rows)-1, s.cursor)
}

func TestEditCommitsOnEnter(t *testing.T) {
	s, st := testScreen(nil)

	s.Update(specialKey(tea.KeyEnter))
	require.True(t, s.editing)
	assert.Equal(t, "Understand core concept", s.input.Value())

	s.input.SetValue("Explain recursion")
	s.Update(specialKey(tea.KeyEnter))

	assert.False(t, s.editing)
	assert.Equal(t, "Explain recursion", st.Feedback.Checkpoints[0].Description)
}

func TestEditCancelsOnEscape(t *testing.T) {
	s, st := testScreen(nil)

	s.Update(specialKey(tea.KeyDown))
	s.Update(keyPress('e'))
	require.True(t, s.editing)
	s.input.SetValue("changed")

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	assert.Nil(t, cmd)
	assert.False(t, s.editing)
	assert.Equal(t, "Explain simply", st.Feedback.Checkpoints[0].Criteria[0])
	assert.Equal(t, session.StepFeedback, st.Step)
}

func TestEditAnswer(t *testing.T) {
	s, st := testScreen(nil)

	s.cursor = 3
	s.Update(specialKey(tea.KeyEnter))
	s.input.SetValue("A function that calls itself until a base case stops it.")
	s.Update(specialKey(tea.KeyEnter))

	assert.Equal(t, "A function that calls itself until a base case stops it.", st.Feedback.Checkpoints[0].Answer)
	assert.Positive(t, st.Understanding().OverallScore)
}

func TestAddCheckpointStartsEditing(t *testing.T) {
	s, st := testScreen(nil)

	s.Update(keyPress('a'))

	assert.Equal(t, 2, st.Feedback.Len())
	assert.True(t, s.editing)
	r, ok := s.current()
	require.True(t, ok)
	assert.Equal(t, row{kind: rowDescription, cp: 1}, r)
}

func TestAddCriterion(t *testing.T) {
	s, st := testScreen(nil)

	s.Update(keyPress('c'))
	require.True(t, s.editing)
	s.input.SetValue("Use an analogy")
	s.Update(specialKey(tea.KeyEnter))

	assert.Equal(t, []string{"Explain simply", "Use an analogy"}, st.Feedback.Checkpoints[0].Criteria)
	assert.Len(t, s.rows, 5)
}

func TestDeleteCriterion(t *testing.T) {
	s, st := testScreen(nil)

	s.cursor = 1
	s.Update(keyPress('x'))

	assert.Empty(t, st.Feedback.Checkpoints[0].Criteria)
	assert.Len(t, s.rows, 3)
}

func TestDeleteCheckpointShiftsAccepted(t *testing.T) {
	s, st := testScreen(nil)
	s.Update(keyPress('a'))
	s.Update(specialKey(tea.KeyEscape))

	// accept the second checkpoint, then delete the first
	s.Update(specialKey(tea.KeySpace))
	assert.True(t, st.Accepted.Has(1))

	s.cursor = 0
	s.Update(keyPress('X'))

	assert.Equal(t, 1, st.Feedback.Len())
	assert.True(t, st.Accepted.Has(0))
	assert.False(t, st.Accepted.Has(1))
}

func TestDeleteLastCheckpoint(t *testing.T) {
	s, st := testScreen(nil)

	s.Update(keyPress('X'))

	assert.Equal(t, 0, st.Feedback.Len())
	assert.Empty(t, s.rows)
	assert.Contains(t, s.View(120, 40), "No checkpoints")

	// no-ops on an empty editor
	s.Update(specialKey(tea.KeySpace))
	s.Update(keyPress('c'))
	s.Update(specialKey(tea.KeyEnter))
	assert.False(t, s.editing)
}

func TestToggleAccepted(t *testing.T) {
	s, st := testScreen(nil)

	s.Update(specialKey(tea.KeySpace))
	assert.Equal(t, []int{0}, st.Accepted.Indexes())
	s.Update(specialKey(tea.KeySpace))
	assert.Empty(t, st.Accepted.Indexes())
}

func TestSave(t *testing.T) {
	var saved []fbmodel.Model
	s, _ := testScreen(func(m fbmodel.Model) error {
		saved = append(saved, m)
		return nil
	})

	s.Update(ctrlS)

	require.Len(t, saved, 1)
	assert.Equal(t, "Understand core concept", saved[0].Checkpoints[0].Description)
	assert.False(t, s.failed)
	assert.Contains(t, s.View(120, 40), "Saved")
}

func TestSaveError(t *testing.T) {
	s, _ := testScreen(func(fbmodel.Model) error { return errors.New("disk full") })

	s.Update(ctrlS)

	assert.True(t, s.failed)
	assert.Contains(t, s.notice, "disk full")
}

func TestSaveWithoutSinkIsNoop(t *testing.T) {
	s, _ := testScreen(nil)

	s.Update(ctrlS)
	assert.Empty(t, s.notice)
	for _, h := range s.KeyHints() {
		assert.NotEqual(t, "Ctrl+S", h.Key)
	}
}

func TestEscapeLeaves(t *testing.T) {
	s, st := testScreen(nil)
	assert.True(t, s.CapturesEscape())

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	assert.Equal(t, session.StepHome, st.Step)
}

func TestEscapeReturnsToCheckpoints(t *testing.T) {
	s, st := testScreen(nil)
	require.NoError(t, st.SubmitNotes("Recursion is a function calling itself."))
	st.OpenFeedback()

	s.Update(specialKey(tea.KeyEscape))
	assert.Equal(t, session.StepCheckpoints, st.Step)
}

func TestView_UnderstandingPanel(t *testing.T) {
	s, _ := testScreen(nil)

	for _, w := range []int{80, 140} {
		v := s.View(w, 40)
		for _, want := range []string{"Feedback Criteria", "Understanding", "Overall", "Novice", "Checkpoint 1"} {
			if !strings.Contains(v, want) {
				t.Errorf("width %d: view missing %q", w, want)
			}
		}
	}
	assert.Equal(t, "novice", strings.ToLower(s.Status()))
}

func TestView_ShortHeightClips(t *testing.T) {
	s, _ := testScreen(nil)
	for range 5 {
		s.Update(keyPress('a'))
		s.Update(specialKey(tea.KeyEscape))
	}

	v := s.View(140, 10)
	assert.LessOrEqual(t, len(strings.Split(v, "\n")), 10)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefghi…", truncate("abcdefghijklmnop", 10))
}
