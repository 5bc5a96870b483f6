package source

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// CallProbeConfig tunes the window-manager call probe.
type CallProbeConfig struct {
	// WindowClass is the class/name searched for with xdotool.
	WindowClass string

	// TitlePattern is the window-info substring that identifies an active
	// call window.
	TitlePattern string
}

// WindowProbe detects an active call by searching the window manager for a
// call application window whose info matches the configured pattern. This is
// the raw detection only; all hysteresis lives in the monitor's call tracker.
type WindowProbe struct {
	cfg    CallProbeConfig
	logger zerolog.Logger
}

// NewWindowProbe creates a probe. Defaults match the Slack call window.
func NewWindowProbe(cfg CallProbeConfig, logger zerolog.Logger) *WindowProbe {
	if cfg.WindowClass == "" {
		cfg.WindowClass = "slack"
	}
	if cfg.TitlePattern == "" {
		cfg.TitlePattern = "Slack call with"
	}
	return &WindowProbe{
		cfg:    cfg,
		logger: logger.With().Str("component", "source").Str("source", "call-probe").Logger(),
	}
}

// Active implements monitor.CallProbe. No matching windows is a normal
// negative result; a missing or broken tool is an error the tracker treats
// as "no call" for the cycle.
func (p *WindowProbe) Active(ctx context.Context) (bool, error) {
	out, err := exec.CommandContext(ctx, "xdotool",
		"search", "--class", "--classname", "--name", p.cfg.WindowClass).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// xdotool exits non-zero when nothing matches.
			return false, nil
		}
		return false, fmt.Errorf("searching for call window: %w", err)
	}

	for _, xid := range strings.Fields(string(out)) {
		info, err := exec.CommandContext(ctx, "xwininfo", "-all", "-id", xid).Output()
		if err != nil {
			p.logger.Debug().Err(err).Str("window", xid).Msg("window info lookup failed")
			continue
		}
		if strings.Contains(string(info), p.cfg.TitlePattern) {
			return true, nil
		}
	}
	return false, nil
}
