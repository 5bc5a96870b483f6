package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is sent once per second to refresh the dashboard snapshot.
type tickMsg time.Time

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleHelp):
			m.ShowHelp = !m.ShowHelp
			return m, nil
		case key.Matches(msg, m.keys.Pause):
			m.Monitor.Pause(pauseDuration)
			m.refresh(time.Now())
			return m, nil
		case key.Matches(msg, m.keys.Resume):
			m.Monitor.Resume()
			m.refresh(time.Now())
			return m, nil
		}

	case tickMsg:
		m.refresh(time.Time(msg))
		return m, tick()
	}

	return m, nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
