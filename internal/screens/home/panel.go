package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/feynman/internal/ui/components"
	"github.com/abhisek/feynman/internal/ui/theme"
)

const titleCompact = "F · E · Y · N · M · A · N"

// howItWorks are the three steps shown under the title.
var howItWorks = []string{
	"1  Add your notes",
	"2  Break them into checkpoints",
	"3  Learn step by step",
}

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(titleCompact)
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Learn with the Feynman technique")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + subtitle)
}

func renderSteps(cw int, compact bool) string {
	sep := "\n"
	if compact {
		sep = "   "
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(strings.Join(howItWorks, sep))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

func renderMenu(menu components.Menu, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Bg).
		Background(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Padding(0, 1)

	buttons := make([]string, 0, len(menu.Items)+2)
	for i, item := range menu.Items {
		label := fmt.Sprintf("%d  %s", i+1, item.Label)
		if i == menu.Selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	if item, ok := menu.Current(); ok && item.Hint != "" {
		buttons = append(buttons, "", theme.Hint.Render(item.Hint))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}
