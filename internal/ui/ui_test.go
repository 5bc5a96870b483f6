package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workease/work-ease/internal/monitor"
	"github.com/workease/work-ease/internal/notify"
)

type idleProbe struct{}

func (idleProbe) Active(ctx context.Context) (bool, error) { return false, nil }

func newTestModel(t *testing.T) (Model, *notify.Recorder) {
	t.Helper()

	rec := notify.NewRecorder(nil)
	cfg := monitor.Config{
		Profile: "default",
		Channels: map[monitor.Channel]monitor.Thresholds{
			monitor.Feet:  {MinRest: 5 * time.Second, MaxExertion: 19 * time.Second},
			monitor.Hands: {MinRest: 5 * time.Second, MaxExertion: 10 * time.Second},
			monitor.Voice: {MinRest: 10 * time.Second, MaxExertion: 20 * time.Second},
		},
	}
	mon := monitor.New(cfg, monitor.RealClock{}, rec, idleProbe{}, zerolog.Nop())
	return NewModel(mon, rec.Log()), rec
}

func TestViewShowsChannels(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Work Ease")
	for _, name := range []string{"feet", "hands", "voice"} {
		assert.Contains(t, view, name)
	}
	assert.Contains(t, view, "call")
}

func TestViewShowsRecentWarnings(t *testing.T) {
	m, rec := newTestModel(t)

	rec.Warn("You should give your feet a break, wait 5 seconds")
	m.refresh(time.Now())

	view := m.View()
	assert.Contains(t, view, "Recent warnings")
	assert.Contains(t, view, "give your feet a break")
}

func TestPauseKeySuspendsMonitor(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, m)
	require.False(t, updated.Snap.PausedUntil.IsZero(), "pause key must suspend the monitor")
	assert.True(t, strings.Contains(updated.View(), "paused"))

	updated, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, updated)
	assert.True(t, updated.Snap.PausedUntil.IsZero(), "resume key must lift the pause")
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, m)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
