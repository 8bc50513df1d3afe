package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ganitguru/internal/screens/practice"
	"github.com/abhisek/ganitguru/internal/session"
	"github.com/abhisek/ganitguru/internal/ui/layout"
)

// AppModel is the root Bubble Tea model hosting the practice screen.
type AppModel struct {
	screen practice.Model
	width  int
	height int
}

func newAppModel(st *session.State) AppModel {
	return AppModel{screen: practice.New(st)}
}

func (m AppModel) Init() tea.Cmd {
	return m.screen.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	vm := m.screen.ViewModel()
	header := layout.RenderHeader(m.screen.Title(), vm.SolvedCount, vm.TotalCount, m.width)

	hints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	for _, h := range m.screen.KeyHints() {
		hints = append(hints, splitHint(h))
	}
	footer := layout.RenderFooter(hints, m.width)

	content := m.screen.View(m.width)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// splitHint turns "Enter submit" into a KeyHint{Key, Description}.
func splitHint(s string) layout.KeyHint {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return layout.KeyHint{Key: s[:i], Description: s[i+1:]}
		}
	}
	return layout.KeyHint{Key: s}
}

// Run starts the Bubble Tea program over the given session.
func Run(st *session.State) error {
	p := tea.NewProgram(newAppModel(st))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
