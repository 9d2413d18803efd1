package feedback

import (
	tea "charm.land/bubbletea/v2"

	fbmodel "github.com/abhisek/feynman/internal/feedback"

	"github.com/abhisek/feynman/internal/router"
	"github.com/abhisek/feynman/internal/screen"
	"github.com/abhisek/feynman/internal/screens"
	"github.com/abhisek/feynman/internal/ui/components"
	"github.com/abhisek/feynman/internal/ui/layout"
)

// FeedbackScreen edits the criterion model and shows live understanding
// scores.
type FeedbackScreen struct {
	deps    screens.Deps
	rows    []row
	cursor  int
	editing bool
	input   components.TextInput
	notice  string
	failed  bool
}

var _ screen.Screen = (*FeedbackScreen)(nil)
var _ screen.KeyHintProvider = (*FeedbackScreen)(nil)
var _ screen.EscapeCapturer = (*FeedbackScreen)(nil)
var _ screen.StatusProvider = (*FeedbackScreen)(nil)

// New creates a FeedbackScreen over the session's feedback model.
func New(deps screens.Deps) *FeedbackScreen {
	s := &FeedbackScreen{deps: deps}
	s.refresh()
	return s
}

func (s *FeedbackScreen) Init() tea.Cmd {
	return nil
}

func (s *FeedbackScreen) Title() string {
	return "Feedback"
}

func (s *FeedbackScreen) Status() string {
	r := s.deps.Session.Understanding()
	return string(r.OverallLevel)
}

// CapturesEscape cancels an inline edit, or leaves after updating the step.
func (s *FeedbackScreen) CapturesEscape() bool {
	return true
}

func (s *FeedbackScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Edit"},
		{Key: "Space", Description: "Accept"},
		{Key: "A", Description: "Add checkpoint"},
		{Key: "C", Description: "Add criterion"},
		{Key: "X", Description: "Delete"},
	}
	if s.deps.SaveModel != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Save"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *FeedbackScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.editing {
		return s.updateEditing(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	st := s.deps.Session
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
	case "enter", "e":
		if r, ok := s.current(); ok {
			return s, s.startEdit(r)
		}
	case "space", " ":
		if r, ok := s.current(); ok {
			st.ToggleAccepted(r.cp)
		}
	case "a":
		st.EditFeedback(func(m fbmodel.Model) fbmodel.Model { return m.AddCheckpoint() })
		target := row{kind: rowDescription, cp: st.Feedback.Len() - 1}
		s.refresh()
		s.focus(target)
		return s, s.startEdit(target)
	case "c":
		r, ok := s.current()
		if !ok {
			return s, nil
		}
		crit := len(st.Feedback.Checkpoints[r.cp].Criteria)
		st.EditFeedback(func(m fbmodel.Model) fbmodel.Model { return m.AddCriterion(r.cp, "") })
		target := row{kind: rowCriterion, cp: r.cp, crit: crit}
		s.refresh()
		s.focus(target)
		return s, s.startEdit(target)
	case "x", "delete":
		s.delete(false)
	case "X":
		s.delete(true)
	case "ctrl+s":
		s.save()
	case "esc":
		st.LeaveFeedback()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *FeedbackScreen) updateEditing(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			if r, ok := s.current(); ok {
				v := s.input.Value()
				s.deps.Session.EditFeedback(func(m fbmodel.Model) fbmodel.Model { return r.set(m, v) })
			}
			s.editing = false
			s.refresh()
			return s, nil
		case "esc":
			s.editing = false
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *FeedbackScreen) startEdit(r row) tea.Cmd {
	s.editing = true
	s.notice = ""
	s.input = components.NewTextInput(r.editLabel(), "Type here...", 0)
	s.input.SetValue(r.value(s.deps.Session.Feedback))
	return s.input.Init()
}

// delete removes the criterion under the cursor, or the whole checkpoint
// when the cursor is elsewhere or whole is set.
func (s *FeedbackScreen) delete(whole bool) {
	r, ok := s.current()
	if !ok {
		return
	}
	st := s.deps.Session
	if r.kind == rowCriterion && !whole {
		st.EditFeedback(func(m fbmodel.Model) fbmodel.Model { return m.RemoveCriterion(r.cp, r.crit) })
	} else {
		st.RemoveFeedbackCheckpoint(r.cp)
	}
	s.refresh()
}

func (s *FeedbackScreen) save() {
	if s.deps.SaveModel == nil {
		return
	}
	st := s.deps.Session
	report := st.Understanding()
	if err := s.deps.SaveModel(st.Feedback); err != nil {
		s.deps.Log().Error("save feedback failed", "error", err)
		s.notice, s.failed = "Save failed: "+err.Error(), true
		return
	}
	s.deps.Log().Info("feedback saved",
		"checkpoints", st.Feedback.Len(),
		"accepted", st.Accepted.Indexes(),
		"overall_score", report.OverallScore,
		"overall_level", report.OverallLevel,
	)
	s.notice, s.failed = "Saved feedback & answers.", false
}

func (s *FeedbackScreen) current() (row, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return row{}, false
	}
	return s.rows[s.cursor], true
}

func (s *FeedbackScreen) focus(target row) {
	if i := indexOf(s.rows, target); i >= 0 {
		s.cursor = i
	}
}

// refresh rebuilds rows from the model and keeps the cursor in range.
func (s *FeedbackScreen) refresh() {
	s.rows = buildRows(s.deps.Session.Feedback)
	if s.cursor >= len(s.rows) {
		s.cursor = len(s.rows) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
