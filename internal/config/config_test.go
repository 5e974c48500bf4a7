package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor/pkg/behavior"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
log_level: debug
interval: 250ms
stop_on: [success, failure]
demo:
  name: gripper
  battery: 30
  battery_drain: 5
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, uint64(50), cfg.MaxTicks, "unset keys keep their default")
	assert.Equal(t, DemoGripper, cfg.Demo.Name)
	assert.Equal(t, 30, cfg.Demo.Battery)
	assert.Equal(t, 5, cfg.Demo.BatteryDrain)
	assert.Equal(t, uint64(2), cfg.Demo.PickAfter)

	statuses, err := cfg.StopStatuses()
	require.NoError(t, err)
	assert.Equal(t, []behavior.Status{behavior.Success, behavior.Failure}, statuses)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("tick_rate: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick_rate")
}

func TestParse_Validation(t *testing.T) {
	cases := map[string]string{
		"level":    "log_level: loud\n",
		"interval": "interval: 0s\n",
		"stop_on":  "stop_on: [done]\n",
		"demo":     "demo:\n  name: juggler\n",
		"battery":  "demo:\n  battery: 140\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_ticks: 7\nmetrics_addr: \":9102\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.MaxTicks)
	assert.Equal(t, ":9102", cfg.MetricsAddr)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_ListsReplaceDefaults(t *testing.T) {
	cfg, err := Parse([]byte("stop_on: []\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.StopOn)
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbor.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
interval = "250ms"
max_ticks = 12
stop_on = ["failure"]

[demo]
name = "gripper"
battery = 60
battery_drain = 10
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, uint64(12), cfg.MaxTicks)
	assert.Equal(t, []string{"failure"}, cfg.StopOn)
	assert.Equal(t, DemoGripper, cfg.Demo.Name)
	assert.Equal(t, 60, cfg.Demo.Battery)
	assert.Equal(t, 10, cfg.Demo.BatteryDrain)
	// Untouched keys keep their defaults.
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, uint64(2), cfg.Demo.PickAfter)
}

func TestParseTOML_Invalid(t *testing.T) {
	_, err := ParseTOML([]byte("interval = "))
	assert.Error(t, err)

	_, err = ParseTOML([]byte(`log_level = "loud"`))
	assert.ErrorIs(t, err, ErrInvalid)
}
