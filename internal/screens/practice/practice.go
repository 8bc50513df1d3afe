// Package practice implements the interactive practice screen: pick the
// four filters, answer the pending questions one at a time, and trigger
// resets and exports. All session mutation goes through session.HandleEvent;
// the screen only renders view models.
package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ganitguru/internal/evaluate"
	"github.com/abhisek/ganitguru/internal/filter"
	"github.com/abhisek/ganitguru/internal/session"
	"github.com/abhisek/ganitguru/internal/ui/components"
)

type phase int

const (
	phasePickLanguage phase = iota
	phasePickChapter
	phasePickExercise
	phasePickDifficulty
	phaseQuestion
	phaseNoMatches
	phaseAllSolved
)

// timerSeconds is the fixed practice countdown length.
const timerSeconds = 10

// tickMsg advances the practice countdown by one second.
type tickMsg time.Time

// Model is the practice screen state.
type Model struct {
	st *session.State
	vm session.ViewModel

	phase  phase
	picker components.Picker
	sel    filter.Selection

	input  components.AnswerInput
	status string

	// timerLeft is the seconds remaining on the practice countdown; zero
	// means no timer is running. While it runs, submission is blocked.
	timerLeft int

	width  int
	height int
}

// New creates the practice screen over an already-loaded session. The
// filter flow starts at language selection.
func New(st *session.State) Model {
	m := Model{
		st:    st,
		vm:    session.Render(st),
		input: components.NewAnswerInput("type your answer"),
	}
	m.picker = components.NewPicker("Select Language", m.vm.Languages)
	return m
}

// Title returns the header title for the current phase.
func (m Model) Title() string {
	switch m.phase {
	case phaseQuestion:
		return "Practice"
	case phaseNoMatches:
		return "No matches"
	case phaseAllSolved:
		return "Done"
	default:
		return "Choose filters"
	}
}

// ViewModel exposes the latest rendered view model (for the header).
func (m Model) ViewModel() session.ViewModel {
	return m.vm
}

func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.timerLeft == 0 {
			return m, nil
		}
		if m.timerLeft == 1 {
			m.timerLeft = 0
			m.status = "Time's up!"
			return m, nil
		}
		m.timerLeft--
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseQuestion {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.phase {
	case phasePickLanguage, phasePickChapter, phasePickExercise, phasePickDifficulty:
		return m.handlePickerKey(msg)
	case phaseQuestion, phaseNoMatches, phaseAllSolved:
		return m.handleQuestionKey(msg)
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var choice string
	var chosen bool
	m.picker, choice, chosen = m.picker.Update(msg)
	if !chosen {
		return m, nil
	}

	switch m.phase {
	case phasePickLanguage:
		m.sel.Language = choice
		m.phase = phasePickChapter
		m.picker = components.NewPicker("Select Chapter", m.vm.Chapters)
	case phasePickChapter:
		m.sel.Chapter = choice
		m.phase = phasePickExercise
		m.picker = components.NewPicker("Select Exercise", m.vm.Exercises)
	case phasePickExercise:
		m.sel.Exercise = choice
		m.phase = phasePickDifficulty
		m.picker = components.NewPicker("Select Difficulty Level", m.vm.Difficulties)
	case phasePickDifficulty:
		m.sel.Difficulty = choice
		m.applyFilter()
	}
	return m, nil
}

// applyFilter pushes the completed selection into the session and moves to
// the matching phase for the resulting subset.
func (m *Model) applyFilter() {
	if err := session.HandleEvent(context.Background(), m.st, session.SetFilterEvent{Selection: m.sel}); err != nil {
		m.status = err.Error()
		return
	}
	m.refresh()
	switch {
	case m.vm.TotalCount == 0:
		m.phase = phaseNoMatches
	case len(m.vm.Pending) == 0:
		m.phase = phaseAllSolved
	default:
		m.phase = phaseQuestion
	}
}

func (m Model) handleQuestionKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+f":
		// Start the filter flow over against the same dataset.
		m.sel = filter.Selection{}
		m.phase = phasePickLanguage
		m.picker = components.NewPicker("Select Language", m.vm.Languages)
		m.status = ""
		return m, nil

	case "ctrl+r":
		if err := session.HandleEvent(context.Background(), m.st, session.ResetEvent{}); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.refresh()
		m.status = "Session progress cleared."
		if m.vm.TotalCount > 0 {
			m.phase = phaseQuestion
		}
		m.input.Clear()
		return m, nil

	case "ctrl+e":
		m.export(session.ExportCSVEvent{})
		return m, nil

	case "ctrl+p":
		m.export(session.ExportReportEvent{})
		return m, nil

	case "ctrl+t":
		if m.timerLeft == 0 {
			m.timerLeft = timerSeconds
			m.status = ""
			return m, tick()
		}
		return m, nil

	case "enter":
		return m.submit()
	}

	if m.phase == phaseQuestion {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.phase != phaseQuestion || len(m.vm.Pending) == 0 {
		return m, nil
	}
	if m.timerLeft > 0 {
		// The countdown blocks interaction until it finishes.
		return m, nil
	}

	current := m.vm.Pending[0]
	err := session.HandleEvent(context.Background(), m.st, session.SubmitAnswerEvent{
		RowIndex: current.RowIndex,
		Text:     m.input.Value(),
	})
	m.refresh()

	switch m.vm.Verdict {
	case evaluate.VerdictEmpty:
		m.status = "Answer cannot be empty."
	case evaluate.VerdictIncorrect:
		m.input.Grade(false)
		m.status = "Incorrect! Please try again."
	case evaluate.VerdictCorrect:
		m.status = "Correct! Question marked as solved."
		if m.vm.BadgeEarned {
			m.status = "Correct! You've earned the Bronze Badge."
		}
		m.input.Clear()
		if len(m.vm.Pending) == 0 {
			m.phase = phaseAllSolved
		}
	}
	if err != nil {
		// A correct answer still counts in the session when only the
		// durable append failed; show the failure instead of the verdict.
		m.status = err.Error()
	}
	return m, nil
}

func (m *Model) export(ev session.Event) {
	if err := session.HandleEvent(context.Background(), m.st, ev); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "Exported " + m.st.LastExportPath
}

func (m *Model) refresh() {
	m.vm = session.Render(m.st)
}

// KeyHints returns the footer hints for the current phase.
func (m Model) KeyHints() []string {
	if m.phase == phaseQuestion {
		return []string{"Enter submit", "Ctrl+T timer", "Ctrl+F filters", "Ctrl+R reset", "Ctrl+E csv", "Ctrl+P report"}
	}
	return []string{"↑↓ navigate", "Enter select"}
}
