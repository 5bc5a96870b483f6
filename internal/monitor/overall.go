package monitor

import (
	"fmt"
	"time"
)

// OverallActivityLogic re-derives the "overall busy" window from the latest
// activity of every channel plus the call-active flag, and raises the
// long-continuous-activity warning. Called on the overall tick cadence; it
// short-circuits while the busy window is younger than the recency interval.
func (m *Monitor) OverallActivityLogic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	if !m.busySince.IsZero() && now.Sub(m.busySince) < m.cfg.OverallInterval {
		return
	}

	anyActive := m.callActive
	for _, st := range m.channels {
		if m.recentlyActive(st.lastActivity, now) {
			anyActive = true
		}
	}

	if anyActive {
		if m.busySince.IsZero() {
			m.busySince = now
		}
		if m.stretchSince.IsZero() {
			m.stretchSince = now
		}
	} else {
		// A single fully idle re-check zeroes the whole window.
		m.busySince = time.Time{}
		m.stretchSince = time.Time{}
	}

	if !m.busySince.IsZero() && now.Sub(m.busySince) >= m.cfg.OverallLimit {
		if !m.lastOverallWarning.IsZero() && now.Sub(m.lastOverallWarning) < m.cfg.OverallSnooze {
			return
		}
		m.warn(fmt.Sprintf("You have been fairly active for %d minutes, take a ten minute break",
			int(now.Sub(m.busySince).Minutes())))
		m.lastOverallWarning = now
	}

	m.profileReminder(now)
}

// recentlyActive reports whether the channel has seen an event within the
// overall recency interval.
func (m *Monitor) recentlyActive(lastActivity, now time.Time) bool {
	return !lastActivity.IsZero() && now.Sub(lastActivity) <= m.cfg.OverallInterval
}

// profileReminder fires a one-time reminder to re-check the settings profile
// when activity resumes after a long idle gap on any channel. Must be called
// with the mutex held.
func (m *Monitor) profileReminder(now time.Time) {
	for _, st := range m.channels {
		if !st.lastActivity.IsZero() && now.Sub(st.lastActivity) > m.cfg.IdleReminder {
			m.idleOverHour = true
		}
	}
	if !m.idleOverHour {
		return
	}

	// Only meaningful right after resumption, while the busy window is young.
	if m.busySince.IsZero() || now.Sub(m.busySince) >= m.cfg.ResumeWindow {
		return
	}

	inBurst := false
	for _, st := range m.channels {
		if st.active {
			inBurst = true
			break
		}
	}
	if !inBurst {
		return
	}

	m.warn(fmt.Sprintf("You have resumed after a period of inactivity, is settings profile [%s] still correct?", m.cfg.Profile))
	m.idleOverHour = false
}

// StretchLogic fires the periodic stretch reminder. Its window mirrors the
// busy window but is only reset by the reminder itself, so the reminder
// recurs for every stretch interval of unbroken activity.
func (m *Monitor) StretchLogic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	if m.stretchSince.IsZero() || now.Sub(m.stretchSince) < m.cfg.StretchAfter {
		return
	}

	m.warn(fmt.Sprintf("You've been active for %d minutes, stretch for a bit",
		int(m.cfg.StretchAfter.Minutes())))
	m.stretchSince = now
}
