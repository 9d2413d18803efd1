package explanation

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/feynman/internal/checkpoints"
	"github.com/abhisek/feynman/internal/logging"
	"github.com/abhisek/feynman/internal/router"
	"github.com/abhisek/feynman/internal/screens"
	"github.com/abhisek/feynman/internal/session"
)

type firstPicker struct{}

func (firstPicker) Pick(string, int, int) int { return 0 }

func testScreen(t *testing.T) (*ExplanationScreen, *session.State) {
	t.Helper()
	st := session.New(checkpoints.NewGenerator(firstPicker{}))
	require.NoError(t, st.SubmitNotes("Newton described Gravity and Inertia."))
	require.True(t, st.DontKnow(st.Checkpoints[0].ID))
	return New(screens.Deps{Session: st, Logger: logging.Nop()}), st
}

func TestUnderstood(t *testing.T) {
	s, st := testScreen(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)

	assert.True(t, st.Checkpoints[0].Completed)
	assert.True(t, st.Checkpoints[0].ExplanationRequested)
	assert.Equal(t, session.StepCheckpoints, st.Step)
}

func TestEscapeLeavesCheckpointUntouched(t *testing.T) {
	s, st := testScreen(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)

	assert.False(t, st.Checkpoints[0].Completed)
	assert.Equal(t, session.StepCheckpoints, st.Step)
}

func TestView(t *testing.T) {
	s, _ := testScreen(t)

	v := s.View(100, 200)
	for _, want := range []string{"Simplified Explanation", "Analogies & Examples", "Understanding Newton"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScrollIsClamped(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.offset)

	for range 500 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	s.View(100, 10)
	assert.Less(t, s.offset, 500)
	assert.Len(t, strings.Split(s.View(100, 10), "\n"), 10)
}

func TestNoCheckpoint(t *testing.T) {
	st := session.New(nil)
	s := New(screens.Deps{Session: st})

	assert.Contains(t, s.View(80, 20), "No checkpoint selected.")
}
