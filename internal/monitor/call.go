package monitor

import (
	"context"
	"fmt"
	"time"
)

// CallLogic runs one polling cycle of the call tracker. It tolerates being
// invoked more frequently than the configured cadence.
//
// Durations of closely-spaced call sessions are summed: a session resumed
// within the grace window still counts the previous session's duration
// toward the limit, so a brief hang-up/rejoin cannot reset the counter.
func (m *Monitor) CallLogic(ctx context.Context) {
	active, err := m.probe.Active(ctx)
	if err != nil {
		// A failed probe counts as "no call detected" for this cycle. The
		// first failure is surfaced once, the rest stay at debug level.
		active = false
		m.mu.Lock()
		first := !m.probeFailed
		m.probeFailed = true
		m.mu.Unlock()
		if first {
			m.logger.Warn().Err(err).Msg("call probe failed, treating as no call")
		} else {
			m.logger.Debug().Err(err).Msg("call probe failed")
		}
	} else {
		m.mu.Lock()
		m.probeFailed = false
		m.mu.Unlock()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()

	if active && m.callStarted.IsZero() {
		m.callStarted = now
	}
	if active {
		m.callActive = true
	}

	// Hanging up: remember when and for how long.
	if !active && m.callEnded.IsZero() && !m.callStarted.IsZero() {
		m.callActive = false
		m.callEnded = now
		m.lastCallDuration = m.callEnded.Sub(m.callStarted)
	}
	if !m.callEnded.IsZero() && !active {
		m.callStarted = time.Time{}
	}

	// Grace window expired with no resumption: full reset.
	if !m.callEnded.IsZero() && !active && !now.Before(m.callEnded.Add(m.cfg.CallRest)) {
		m.lastCallWarning = time.Time{}
		m.callEnded = time.Time{}
		m.lastCallDuration = 0
	}

	// Warn if the current call, or the current plus the previous call,
	// exceeds the limit.
	if !m.callStarted.IsZero() &&
		(now.Sub(m.callStarted) >= m.cfg.CallLimit ||
			now.Sub(m.callStarted)+m.lastCallDuration >= m.cfg.CallLimit) {
		if !m.lastCallWarning.IsZero() && now.Sub(m.lastCallWarning) < m.cfg.CallSnooze {
			return
		}
		m.warn(fmt.Sprintf("You have been on a call for over %d minutes, take a %d minute break",
			int(m.cfg.CallLimit.Minutes()), int(m.cfg.CallRest.Minutes())))
		m.notifier.ScheduleRest(m.cfg.CallRest, "call")
		m.lastCallWarning = now
	}
}
