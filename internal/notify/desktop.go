package notify

import (
	"fmt"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/workease/work-ease/internal/util"
)

// DefaultCooldown is the minimum gap between delivered warnings. It must be
// long enough to absorb repeated warnings from a high-frequency event source
// such as mouse motion.
const DefaultCooldown = 2 * time.Second

// DesktopConfig tunes the production notifier.
type DesktopConfig struct {
	Cooldown     time.Duration
	WarnSound    string // sound file played with a warning, optional
	RestSound    string // sound file played with a rest-complete notice, optional
	SoundVolume  int    // paplay --volume argument
	PopupTimeout int    // popup auto-dismiss, seconds
}

// Desktop delivers warnings through desktop audio and popups, rate-limited by
// a global cooldown window. Every successful delivery is also appended to the
// warning log.
type Desktop struct {
	mu         sync.Mutex
	cfg        DesktopConfig
	pauseUntil time.Time
	log        Log
	logger     zerolog.Logger

	// deliver is swapped out in tests.
	deliver func(message, sound string)
}

// NewDesktop creates the production warning sink.
func NewDesktop(cfg DesktopConfig, logger zerolog.Logger) *Desktop {
	if cfg.Cooldown == 0 {
		cfg.Cooldown = DefaultCooldown
	}
	if cfg.SoundVolume == 0 {
		cfg.SoundVolume = 30000
	}
	if cfg.PopupTimeout == 0 {
		cfg.PopupTimeout = 3
	}
	d := &Desktop{
		cfg:    cfg,
		logger: logger.With().Str("component", "notify").Logger(),
	}
	d.deliver = d.desktopDeliver
	return d
}

// Warn delivers the message unless the cooldown window is still open, in
// which case the call is a no-op. Successful deliveries advance the window.
func (d *Desktop) Warn(message string) {
	d.mu.Lock()
	now := time.Now()
	if !now.After(d.pauseUntil) {
		d.mu.Unlock()
		d.logger.Debug().Str("warning", message).Msg("warning dropped inside cooldown window")
		return
	}
	d.pauseUntil = now.Add(d.cfg.Cooldown)
	d.log.Append(now, message)
	d.mu.Unlock()

	go d.deliver(message, d.cfg.WarnSound)
}

// ScheduleRest fires a one-shot "<label>-break over" notice after the rest
// duration elapses. Rest notices bypass the warning cooldown. If the process
// exits first, the notice is simply lost.
func (d *Desktop) ScheduleRest(after time.Duration, label string) {
	message := fmt.Sprintf("%s-break over", label)
	time.AfterFunc(after, func() {
		d.deliver(message, d.cfg.RestSound)
	})
}

// Log exposes the append-only warning log for inspection.
func (d *Desktop) Log() *Log {
	return &d.log
}

// desktopDeliver plays the sound and raises a popup, best effort. Failures
// are logged and never propagated.
func (d *Desktop) desktopDeliver(message, sound string) {
	if sound != "" && util.HasCommand("paplay") {
		d.runBestEffort("paplay", "--volume", strconv.Itoa(d.cfg.SoundVolume), sound)
	}

	timeout := strconv.Itoa(d.cfg.PopupTimeout)
	switch {
	case util.HasCommand("xmessage"):
		d.runBestEffort("xmessage", message, "-center", "-timeout", timeout)
	case util.HasCommand("notify-send"):
		d.runBestEffort("notify-send", "-t", strconv.Itoa(d.cfg.PopupTimeout*1000), "Work Ease", message)
	default:
		d.logger.Info().Str("warning", message).Msg("no popup tool available, logged only")
	}
}

func (d *Desktop) runBestEffort(name string, args ...string) {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		d.logger.Warn().Err(err).Str("cmd", name).Str("output", string(out)).Msg("delivery command failed")
	}
}
