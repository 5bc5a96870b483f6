// Package config loads the work-ease configuration: named threshold
// profiles, input paths, device names, timer tuning, and logging settings.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/workease/work-ease/internal/monitor"
	"github.com/workease/work-ease/internal/util"
)

// Config holds the complete application configuration.
type Config struct {
	Profile  string             `mapstructure:"profile"`
	Profiles map[string]Profile `mapstructure:"profiles"`
	Inputs   InputsConfig       `mapstructure:"inputs"`
	Devices  DevicesConfig      `mapstructure:"devices"`
	Call     CallConfig         `mapstructure:"call"`
	Overall  OverallConfig      `mapstructure:"overall"`
	Notify   NotifyConfig       `mapstructure:"notify"`
	Logging  LoggingConfig      `mapstructure:"logging"`
}

// Profile maps a channel name to its exertion thresholds.
type Profile map[string]ThresholdConfig

// ThresholdConfig holds one channel's limits. Durations are strings: bare
// integers are minutes, otherwise Go duration syntax ("90s", "10m").
type ThresholdConfig struct {
	MinRest     string `mapstructure:"min_rest"`
	MaxExertion string `mapstructure:"max_exertion"`
}

// InputsConfig names the log-style input streams.
type InputsConfig struct {
	FeetPath        string `mapstructure:"feet_path"`
	VoicePath       string `mapstructure:"voice_path"`
	TruncateOnStart bool   `mapstructure:"truncate_on_start"`
}

// DevicesConfig names the X input devices attributed to the hands channel.
type DevicesConfig struct {
	Keyboard string `mapstructure:"keyboard"`
	Mouse    string `mapstructure:"mouse"`
}

// CallConfig tunes the call tracker.
type CallConfig struct {
	Interval     string `mapstructure:"interval"`
	Limit        string `mapstructure:"limit"`
	Rest         string `mapstructure:"rest"`
	Snooze       string `mapstructure:"snooze"`
	WindowClass  string `mapstructure:"window_class"`
	TitlePattern string `mapstructure:"title_pattern"`
}

// OverallConfig tunes the aggregate activity and stretch trackers.
type OverallConfig struct {
	Interval     string `mapstructure:"interval"`
	Limit        string `mapstructure:"limit"`
	Snooze       string `mapstructure:"snooze"`
	Stretch      string `mapstructure:"stretch"`
	IdleReminder string `mapstructure:"idle_reminder"`
}

// NotifyConfig tunes warning delivery.
type NotifyConfig struct {
	Cooldown     string `mapstructure:"cooldown"`
	WarnSound    string `mapstructure:"warn_sound"`
	RestSound    string `mapstructure:"rest_sound"`
	SoundVolume  int    `mapstructure:"sound_volume"`
	PopupTimeout int    `mapstructure:"popup_timeout"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads the configuration from the given path, or from the default
// search locations when path is empty. Missing files fall back to defaults;
// an explicitly named file must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		v.SetConfigName("workease")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/workease")
		}
		v.AddConfigPath("/etc/workease")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, ok := cfg.Profiles[cfg.Profile]; !ok {
		return nil, fmt.Errorf("unknown profile %q", cfg.Profile)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("profile", "default")
	v.SetDefault("profiles.default.feet.min_rest", "60s")
	v.SetDefault("profiles.default.feet.max_exertion", "10m")
	v.SetDefault("profiles.default.hands.min_rest", "5s")
	v.SetDefault("profiles.default.hands.max_exertion", "3m")
	v.SetDefault("profiles.default.voice.min_rest", "10s")
	v.SetDefault("profiles.default.voice.max_exertion", "2m")

	v.SetDefault("inputs.feet_path", "inputs/feet")
	v.SetDefault("inputs.voice_path", "inputs/voice")
	v.SetDefault("inputs.truncate_on_start", false)

	v.SetDefault("devices.keyboard", "AT Translated Set 2 keyboard")
	v.SetDefault("devices.mouse", "SynPS/2 Synaptics TouchPad")

	v.SetDefault("call.interval", "1m")
	v.SetDefault("call.limit", "45m")
	v.SetDefault("call.rest", "10m")
	v.SetDefault("call.snooze", "5m")
	v.SetDefault("call.window_class", "slack")
	v.SetDefault("call.title_pattern", "Slack call with")

	v.SetDefault("overall.interval", "3m")
	v.SetDefault("overall.limit", "50m")
	v.SetDefault("overall.snooze", "5m")
	v.SetDefault("overall.stretch", "15m")
	v.SetDefault("overall.idle_reminder", "1h")

	v.SetDefault("notify.cooldown", "2s")
	v.SetDefault("notify.sound_volume", 30000)
	v.SetDefault("notify.popup_timeout", 3)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// MonitorConfig converts the active profile and timer tuning into the
// monitor's configuration.
func (c *Config) MonitorConfig() (monitor.Config, error) {
	profile, ok := c.Profiles[c.Profile]
	if !ok {
		return monitor.Config{}, fmt.Errorf("unknown profile %q", c.Profile)
	}

	channels := make(map[monitor.Channel]monitor.Thresholds, len(profile))
	for _, name := range monitor.Channels {
		th, ok := profile[string(name)]
		if !ok {
			return monitor.Config{}, fmt.Errorf("profile %q missing channel %q", c.Profile, name)
		}
		minRest, err := parseDuration(th.MinRest, fmt.Sprintf("%s.min_rest", name))
		if err != nil {
			return monitor.Config{}, err
		}
		maxExertion, err := parseDuration(th.MaxExertion, fmt.Sprintf("%s.max_exertion", name))
		if err != nil {
			return monitor.Config{}, err
		}
		channels[name] = monitor.Thresholds{MinRest: minRest, MaxExertion: maxExertion}
	}

	mc := monitor.Config{
		Profile:  c.Profile,
		Channels: channels,
	}

	durations := []struct {
		value string
		name  string
		dst   *time.Duration
	}{
		{c.Overall.Interval, "overall.interval", &mc.OverallInterval},
		{c.Overall.Limit, "overall.limit", &mc.OverallLimit},
		{c.Overall.Snooze, "overall.snooze", &mc.OverallSnooze},
		{c.Overall.Stretch, "overall.stretch", &mc.StretchAfter},
		{c.Overall.IdleReminder, "overall.idle_reminder", &mc.IdleReminder},
		{c.Call.Interval, "call.interval", &mc.CallInterval},
		{c.Call.Limit, "call.limit", &mc.CallLimit},
		{c.Call.Rest, "call.rest", &mc.CallRest},
		{c.Call.Snooze, "call.snooze", &mc.CallSnooze},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		parsed, err := parseDuration(d.value, d.name)
		if err != nil {
			return monitor.Config{}, err
		}
		*d.dst = parsed
	}

	return mc, nil
}

// NotifierConfig converts the notify section.
func (c *Config) NotifierConfig() (cooldown time.Duration, err error) {
	if c.Notify.Cooldown == "" {
		return 0, nil
	}
	return parseDuration(c.Notify.Cooldown, "notify.cooldown")
}

func parseDuration(value, name string) (time.Duration, error) {
	d, err := util.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}
