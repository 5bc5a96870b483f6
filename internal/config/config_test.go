package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workease/work-ease/internal/monitor"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workease.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Profile)
	assert.Equal(t, "inputs/feet", cfg.Inputs.FeetPath)
	assert.Equal(t, "slack", cfg.Call.WindowClass)
	assert.Equal(t, "info", cfg.Logging.Level)

	mc, err := cfg.MonitorConfig()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, mc.CallLimit)
	assert.Equal(t, 50*time.Minute, mc.OverallLimit)
	assert.Equal(t, 3*time.Minute, mc.OverallInterval)
	assert.Equal(t, monitor.Thresholds{MinRest: 5 * time.Second, MaxExertion: 3 * time.Minute}, mc.Channels[monitor.Hands])
}

func TestLoadProfileOverrides(t *testing.T) {
	path := writeConfig(t, `
profile: intense
profiles:
  intense:
    feet:
      min_rest: 5s
      max_exertion: 19s
    hands:
      min_rest: 5s
      max_exertion: 10s
    voice:
      min_rest: 10s
      max_exertion: 20s
call:
  limit: 28m
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	mc, err := cfg.MonitorConfig()
	require.NoError(t, err)
	assert.Equal(t, "intense", mc.Profile)
	assert.Equal(t, monitor.Thresholds{MinRest: 5 * time.Second, MaxExertion: 19 * time.Second}, mc.Channels[monitor.Feet])
	assert.Equal(t, 28*time.Minute, mc.CallLimit)
}

func TestLoadUnknownProfile(t *testing.T) {
	path := writeConfig(t, "profile: typo\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown profile "typo"`)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMonitorConfigMissingChannel(t *testing.T) {
	path := writeConfig(t, `
profile: partial
profiles:
  partial:
    feet:
      min_rest: 5s
      max_exertion: 19s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.MonitorConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing channel")
}

func TestMonitorConfigBadDuration(t *testing.T) {
	path := writeConfig(t, `
profiles:
  default:
    feet:
      min_rest: soon
      max_exertion: 10m
    hands:
      min_rest: 5s
      max_exertion: 3m
    voice:
      min_rest: 10s
      max_exertion: 2m
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.MonitorConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feet.min_rest")
}
