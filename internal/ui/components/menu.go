package components

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
)

// MenuItem is one entry of a Menu. Hint is a one-line description shown for
// the selected item.
type MenuItem struct {
	Label    string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical selection list. Items can be picked with the arrow
// keys and Enter, or directly by their 1-based number.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Current returns the selected item.
func (m Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		m.Selected = m.step(-1)
	case "down", "j":
		m.Selected = m.step(1)
	case "home", "g":
		m.Selected = m.step(-len(m.Items))
	case "end", "G":
		m.Selected = m.step(len(m.Items))
	case "enter":
		return m, m.activate()
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Items) && !m.Items[n-1].Disabled {
			m.Selected = n - 1
			return m, m.activate()
		}
	}
	return m, nil
}

// step moves up to |delta| enabled items in the direction of delta and
// stops at the ends.
func (m Menu) step(delta int) int {
	dir := 1
	if delta < 0 {
		dir, delta = -1, -delta
	}
	sel := m.Selected
	for i := m.Selected + dir; i >= 0 && i < len(m.Items) && delta > 0; i += dir {
		if !m.Items[i].Disabled {
			sel = i
			delta--
		}
	}
	return sel
}

func (m Menu) activate() tea.Cmd {
	item, ok := m.Current()
	if !ok || item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}
