// Package monitor implements the activity-tracking and warning state machine:
// per-channel burst/rest accounting, call-duration tracking with hysteresis,
// and the aggregate activity and stretch timers.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Default timer settings, matching the long-standing tuning of the tool.
const (
	DefaultOverallInterval = 3 * time.Minute
	DefaultOverallLimit    = 50 * time.Minute
	DefaultOverallSnooze   = 5 * time.Minute
	DefaultOverallTick     = time.Second
	DefaultCallInterval    = time.Minute
	DefaultCallLimit       = 45 * time.Minute
	DefaultCallRest        = 10 * time.Minute
	DefaultCallSnooze      = 5 * time.Minute
	DefaultStretchAfter    = 15 * time.Minute
	DefaultIdleReminder    = time.Hour
	DefaultResumeWindow    = 5 * time.Minute
)

// Notifier is the presentation collaborator the monitor needs. Delivery is
// best-effort: implementations must not panic and must swallow their own
// errors.
type Notifier interface {
	// Warn delivers a warning message, subject to the sink's own cooldown.
	Warn(message string)

	// ScheduleRest fires a one-shot "<label>-break over" notice after the
	// given duration elapses, independent of the warning cooldown.
	ScheduleRest(after time.Duration, label string)
}

// CallProbe reports whether a voice/video call is currently active.
type CallProbe interface {
	Active(ctx context.Context) (bool, error)
}

// Source is a long-running event producer (file tailer, device reader)
// feeding Check calls into the monitor.
type Source interface {
	Name() string
	Run(ctx context.Context) error
}

// Config holds the monitor's thresholds and timer tuning.
type Config struct {
	// Profile is the name of the active settings profile, referenced by the
	// profile reminder.
	Profile string

	// Channels maps each monitored channel to its exertion thresholds.
	Channels map[Channel]Thresholds

	OverallInterval time.Duration // recency window for "overall busy"
	OverallLimit    time.Duration // continuous busy time before warning
	OverallSnooze   time.Duration // minimum gap between overall warnings
	OverallTick     time.Duration // cadence of the overall/stretch loop

	CallInterval time.Duration // call probe polling cadence
	CallLimit    time.Duration // combined call duration before warning
	CallRest     time.Duration // grace window between summed call sessions
	CallSnooze   time.Duration // minimum gap between call warnings

	StretchAfter time.Duration // continuous activity before a stretch reminder
	IdleReminder time.Duration // per-channel idle time that arms the profile reminder
	ResumeWindow time.Duration // max busy-window age for the profile reminder to fire
}

func (c *Config) applyDefaults() {
	if c.OverallInterval == 0 {
		c.OverallInterval = DefaultOverallInterval
	}
	if c.OverallLimit == 0 {
		c.OverallLimit = DefaultOverallLimit
	}
	if c.OverallSnooze == 0 {
		c.OverallSnooze = DefaultOverallSnooze
	}
	if c.OverallTick == 0 {
		c.OverallTick = DefaultOverallTick
	}
	if c.CallInterval == 0 {
		c.CallInterval = DefaultCallInterval
	}
	if c.CallLimit == 0 {
		c.CallLimit = DefaultCallLimit
	}
	if c.CallRest == 0 {
		c.CallRest = DefaultCallRest
	}
	if c.CallSnooze == 0 {
		c.CallSnooze = DefaultCallSnooze
	}
	if c.StretchAfter == 0 {
		c.StretchAfter = DefaultStretchAfter
	}
	if c.IdleReminder == 0 {
		c.IdleReminder = DefaultIdleReminder
	}
	if c.ResumeWindow == 0 {
		c.ResumeWindow = DefaultResumeWindow
	}
}

// Monitor owns all tracking state. A single mutex serializes Check calls from
// the event sources, the periodic tracker loops, and UI snapshots.
type Monitor struct {
	mu       sync.Mutex
	cfg      Config
	clock    Clock
	notifier Notifier
	probe    CallProbe
	logger   zerolog.Logger

	channels    map[Channel]*channelState
	pausedUntil time.Time

	// call tracking
	callStarted      time.Time
	callEnded        time.Time
	lastCallDuration time.Duration
	lastCallWarning  time.Time
	callActive       bool
	probeFailed      bool

	// aggregate activity
	busySince          time.Time
	stretchSince       time.Time
	lastOverallWarning time.Time
	idleOverHour       bool
}

// New creates a monitor from caller-supplied thresholds. The clock is
// injectable so the state machine can be driven deterministically in tests.
func New(cfg Config, clock Clock, notifier Notifier, probe CallProbe, logger zerolog.Logger) *Monitor {
	cfg.applyDefaults()

	channels := make(map[Channel]*channelState, len(cfg.Channels))
	for name, th := range cfg.Channels {
		channels[name] = &channelState{
			minRest:     th.MinRest,
			maxExertion: th.MaxExertion,
		}
	}

	return &Monitor{
		cfg:      cfg,
		clock:    clock,
		notifier: notifier,
		probe:    probe,
		logger:   logger.With().Str("component", "monitor").Logger(),
		channels: channels,
	}
}

// Check records one raw input event on the given channel and decides whether
// the channel's burst has exceeded its exertion limit. It never blocks on
// anything but the monitor mutex.
func (m *Monitor) Check(ch Channel) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.channels[ch]
	if !ok {
		m.logger.Warn().Str("channel", string(ch)).Msg("event for unconfigured channel dropped")
		return
	}

	now := m.clock.Now()
	if now.Before(m.pausedUntil) {
		return
	}

	if st.lastActivity.IsZero() {
		st.lastActivity = now
	}

	if now.Sub(st.lastActivity) < st.minRest {
		// Entering or continuing a burst. The burst began at the previous
		// event, not now.
		if !st.active {
			st.activityStart = st.lastActivity
		}
		st.active = true
	} else {
		st.active = false
		st.activityStart = now
	}

	if m.exceeded(st, now) {
		m.warn(fmt.Sprintf("You should give your %s a break, wait %d seconds", ch, int(st.minRest.Seconds())))
		m.notifier.ScheduleRest(st.minRest, string(ch))
	}

	st.lastActivity = now
}

// exceeded reports whether the channel's current burst has outlasted its
// exertion limit. The now > lastActivity guard keeps a clock standing still
// at the boundary from triggering.
func (m *Monitor) exceeded(st *channelState, now time.Time) bool {
	return st.active &&
		now.Sub(st.activityStart) > st.maxExertion &&
		now.After(st.lastActivity)
}

// Pause suspends all activity accounting until the given duration elapses.
// Events observed while paused are dropped entirely.
func (m *Monitor) Pause(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pausedUntil = m.clock.Now().Add(d)
	m.logger.Info().Time("until", m.pausedUntil).Msg("monitoring paused")
}

// Resume lifts a previous Pause.
func (m *Monitor) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pausedUntil = time.Time{}
	m.logger.Info().Msg("monitoring resumed")
}

// warn hands a message to the notifier. Must be called with the mutex held.
func (m *Monitor) warn(message string) {
	m.logger.Info().Str("warning", message).Msg("warning raised")
	m.notifier.Warn(message)
}

// Snapshot returns a consistent copy of the monitor's visible state.
type Snapshot struct {
	Channels    []ChannelSnapshot
	CallActive  bool
	CallStarted time.Time
	BusySince   time.Time
	PausedUntil time.Time
}

// Snapshot takes a consistent read of all tracking state for display.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		CallActive:  m.callActive,
		CallStarted: m.callStarted,
		BusySince:   m.busySince,
		PausedUntil: m.pausedUntil,
	}
	for _, name := range Channels {
		st, ok := m.channels[name]
		if !ok {
			continue
		}
		snap.Channels = append(snap.Channels, ChannelSnapshot{
			Name:          name,
			Active:        st.active,
			LastActivity:  st.lastActivity,
			ActivityStart: st.activityStart,
			MinRest:       st.minRest,
			MaxExertion:   st.maxExertion,
		})
	}
	return snap
}

// Run starts the event sources and the two periodic tracker loops and blocks
// until the context is cancelled. Source failures are logged but do not stop
// the monitor.
func (m *Monitor) Run(ctx context.Context, sources ...Source) {
	var wg sync.WaitGroup

	for _, src := range sources {
		wg.Add(1)
		go func(src Source) {
			defer wg.Done()
			if err := src.Run(ctx); err != nil && ctx.Err() == nil {
				m.logger.Error().Err(err).Str("source", src.Name()).Msg("event source stopped")
			}
		}(src)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(m.cfg.CallInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.CallLogic(ctx)
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(m.cfg.OverallTick)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.OverallActivityLogic()
				m.StretchLogic()
			}
		}
	}()

	wg.Wait()
}
