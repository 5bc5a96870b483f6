package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/workease/work-ease/internal/monitor"
	"github.com/workease/work-ease/internal/notify"
)

// warningTail is how many recent warnings the dashboard shows.
const warningTail = 8

// pauseDuration is how long the pause command suspends monitoring.
const pauseDuration = 5 * time.Minute

// Model holds the dashboard state: a periodic snapshot of the monitor plus
// the tail of the warning log.
type Model struct {
	Monitor  *monitor.Monitor
	Warnings *notify.Log

	Snap     monitor.Snapshot
	Recent   []notify.Entry
	Now      time.Time
	ShowHelp bool
	Version  string

	keys KeyMap
	help help.Model
}

// NewModel returns the initial dashboard model.
func NewModel(mon *monitor.Monitor, warnings *notify.Log) Model {
	m := Model{
		Monitor:  mon,
		Warnings: warnings,
		keys:     DefaultKeys(),
		help:     NewHelpModel(),
	}
	m.refresh(time.Now())
	return m
}

// SetVersion sets the version string shown in the footer.
func (m *Model) SetVersion(v string) {
	m.Version = v
}

func (m *Model) refresh(now time.Time) {
	m.Now = now
	m.Snap = m.Monitor.Snapshot()
	m.Recent = m.Warnings.Tail(warningTail)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return Update(msg, m)
}

// View implements tea.Model.
func (m Model) View() string {
	return View(m)
}
