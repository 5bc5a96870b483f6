package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/workease/work-ease/internal/monitor"
)

// View renders the dashboard.
func View(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Work Ease"))
	b.WriteString("\n\n")

	if !m.Snap.PausedUntil.IsZero() && m.Now.Before(m.Snap.PausedUntil) {
		b.WriteString(Current.Paused.Render(fmt.Sprintf("Monitoring paused until %s", m.Snap.PausedUntil.Format("15:04:05"))))
		b.WriteString("\n\n")
	}

	for _, ch := range m.Snap.Channels {
		b.WriteString(channelLine(ch, m.Now))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(callLine(m.Snap, m.Now))
	b.WriteString("\n")
	b.WriteString(busyLine(m.Snap, m.Now))
	b.WriteString("\n\n")

	if len(m.Recent) > 0 {
		b.WriteString(Current.Label.Render("Recent warnings"))
		b.WriteString("\n")
		for _, e := range m.Recent {
			b.WriteString(Current.Warning.Render(fmt.Sprintf("%s  %s", e.Time.Format("15:04:05"), e.Message)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.ShowHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(Current.Help.Render("p pause 5 min • r resume • h help • q quit"))
	}
	if m.Version != "" {
		b.WriteString("\n" + Current.Help.Render("workease "+m.Version))
	}

	return b.String()
}

func channelLine(ch monitor.ChannelSnapshot, now time.Time) string {
	label := fmt.Sprintf("%-6s", ch.Name)

	if ch.LastActivity.IsZero() {
		return Current.Idle.Render(label + "no activity yet")
	}

	since := now.Sub(ch.LastActivity).Round(time.Second)
	if ch.Active {
		burst := now.Sub(ch.ActivityStart).Round(time.Second)
		return Current.Active.Render(fmt.Sprintf("%sburst %s (limit %s)", label, burst, ch.MaxExertion))
	}
	return Current.Idle.Render(fmt.Sprintf("%sidle, last event %s ago", label, since))
}

func callLine(snap monitor.Snapshot, now time.Time) string {
	if snap.CallActive && !snap.CallStarted.IsZero() {
		return Current.Active.Render(fmt.Sprintf("call   active for %s", now.Sub(snap.CallStarted).Round(time.Second)))
	}
	return Current.Idle.Render("call   none detected")
}

func busyLine(snap monitor.Snapshot, now time.Time) string {
	if snap.BusySince.IsZero() {
		return Current.Idle.Render("busy   no continuous activity")
	}
	return Current.Active.Render(fmt.Sprintf("busy   continuously active for %s", now.Sub(snap.BusySince).Round(time.Second)))
}
