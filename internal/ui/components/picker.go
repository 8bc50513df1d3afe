package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ganitguru/internal/ui/theme"
)

// Picker is a vertical single-choice list used for the four filter fields.
// Choices come from the loaded bank's distinct values for one field.
type Picker struct {
	Title    string
	Choices  []string
	Selected int
}

// NewPicker creates a picker over the given choices.
func NewPicker(title string, choices []string) Picker {
	return Picker{Title: title, Choices: choices}
}

// Update handles keyboard navigation. It returns the chosen value and true
// on enter.
func (p Picker) Update(msg tea.Msg) (Picker, string, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, "", false
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Choices)-1 {
			p.Selected++
		}
	case "enter":
		if p.Selected >= 0 && p.Selected < len(p.Choices) {
			return p, p.Choices[p.Selected], true
		}
	}

	return p, "", false
}

// View renders the picker.
func (p Picker) View() string {
	s := lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Title) + "\n"
	for i, choice := range p.Choices {
		if i == p.Selected {
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+choice) + "\n"
		} else {
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+choice) + "\n"
		}
	}
	return s
}
