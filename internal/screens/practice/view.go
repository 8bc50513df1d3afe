package practice

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ganitguru/internal/evaluate"
	"github.com/abhisek/ganitguru/internal/ui/components"
	"github.com/abhisek/ganitguru/internal/ui/theme"
)

// View renders the screen content for the current phase.
func (m Model) View(width int) string {
	switch m.phase {
	case phaseQuestion:
		return m.viewQuestion(width)
	case phaseNoMatches:
		return m.viewMessage("No questions found for the selected filters.\n\nPress Ctrl+F to choose different filters.")
	case phaseAllSolved:
		return m.viewMessage("All questions in this selection are solved. 🎉\n\nPress Ctrl+F to pick another set or Ctrl+P to export the report.")
	default:
		return m.viewPicker(width)
	}
}

func (m Model) viewPicker(width int) string {
	header := theme.Title.Width(width).Render("Ganit Guru (गणित गुरु)") + "\n" +
		theme.Subtitle.Width(width).Render("Select filters, and solve interactively.") + "\n\n"
	return header + m.picker.View()
}

func (m Model) viewQuestion(width int) string {
	if len(m.vm.Pending) == 0 {
		return m.viewMessage("Nothing pending.")
	}
	current := m.vm.Pending[0]
	q := current.Question

	card := fmt.Sprintf("Q%d: %s", current.RowIndex+1, q.Question)
	if q.HasEquation() {
		card += "\n" + theme.Hint.Render(q.LatexEquation)
	}
	if q.HasImage() {
		card += "\n" + theme.Hint.Render("[diagram: "+q.Image+"]")
	}

	s := theme.Card.Width(width - 4).Render(card) + "\n\n"
	s += m.input.View() + "\n\n"

	if m.timerLeft > 0 {
		s += theme.EmptyMsg.Render(fmt.Sprintf("Time left: %d seconds", m.timerLeft)) + "\n\n"
	}
	if m.status != "" {
		s += m.statusStyle().Render(m.status) + "\n\n"
	}

	bar := components.NewProgressBar(
		fmt.Sprintf("Progress %d/%d", m.vm.SolvedCount, m.vm.TotalCount),
		m.vm.Ratio,
		width-4,
	)
	return s + bar.View()
}

func (m Model) viewMessage(msg string) string {
	s := theme.Body.Render(msg)
	if m.status != "" {
		s += "\n\n" + m.statusStyle().Render(m.status)
	}
	return s
}

func (m Model) statusStyle() lipgloss.Style {
	switch {
	case m.vm.HasVerdict && m.vm.Verdict == evaluate.VerdictCorrect:
		return theme.CorrectMsg
	case m.vm.HasVerdict && m.vm.Verdict == evaluate.VerdictIncorrect:
		return theme.IncorrectMsg
	default:
		return theme.EmptyMsg
	}
}
