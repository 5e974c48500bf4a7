package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/pkg/behavior"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Interval = time.Millisecond
	return cfg
}

func TestRunDemo_PickAndPlaceStopsOnSuccess(t *testing.T) {
	var out bytes.Buffer
	reg := prometheus.NewRegistry()

	res, err := runDemo(context.Background(), testConfig(), runOptions{Out: &out, Registry: reg})
	require.NoError(t, err)

	assert.Equal(t, uint64(5), res.Ticks)
	assert.Equal(t, behavior.Success, res.Last)
	assert.True(t, res.Stopped)
	assert.Contains(t, out.String(), "tick   1  FAILURE  initialized=true picked=false placed=false")
	assert.Contains(t, out.String(), "tick   5  SUCCESS  initialized=true picked=true placed=true")

	count, err := testutil.GatherAndCount(reg, "arbor_ticks_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRunDemo_GripperStopsOnLowBattery(t *testing.T) {
	cfg := testConfig()
	cfg.StopOn = []string{"failure"}
	cfg.Demo = config.Demo{Name: config.DemoGripper, Battery: 30, BatteryDrain: 5}

	var out bytes.Buffer
	res, err := runDemo(context.Background(), cfg, runOptions{Out: &out, Report: true})
	require.NoError(t, err)

	assert.Equal(t, uint64(3), res.Ticks)
	assert.Equal(t, behavior.Failure, res.Last)
	assert.Contains(t, out.String(), "battery=20 grasps=2")
	assert.Contains(t, out.String(), "gripper")
}

func TestRunDemo_MaxTicks(t *testing.T) {
	cfg := testConfig()
	cfg.StopOn = nil
	cfg.MaxTicks = 3

	res, err := runDemo(context.Background(), cfg, runOptions{Out: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), res.Ticks)
	assert.False(t, res.Stopped)
}

func TestRunDemo_CancelIsNotAnError(t *testing.T) {
	cfg := testConfig()
	cfg.StopOn = nil
	cfg.MaxTicks = 0
	cfg.Interval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := runDemo(ctx, cfg, runOptions{Out: &bytes.Buffer{}})
	assert.NoError(t, err)
	assert.Zero(t, res.Ticks)
}

func TestRunDemo_UnknownDemo(t *testing.T) {
	cfg := testConfig()
	cfg.Demo.Name = "welder"

	_, err := runDemo(context.Background(), cfg, runOptions{Out: &bytes.Buffer{}})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "arbor version 0.1.0\n", out.String())
}

func TestRunCommand_UsesConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: error
interval: 1ms
demo:
  name: gripper
  battery: 100
`), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "--config", path, "--quiet", "--max-ticks", "2", "--stop-on", "failure"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "tick   1  SUCCESS  battery=100 grasps=1")
	assert.Contains(t, out.String(), "tick   2  SUCCESS  battery=100 grasps=2")
	assert.NotContains(t, out.String(), "tick   3")
}

func TestRunCommand_RejectsBadFlagValue(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"run", "--config", "", "--demo", "welder"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfigFlagMentionsBothFormats(t *testing.T) {
	usage := rootCmd.PersistentFlags().Lookup("config").Usage
	assert.Contains(t, usage, "YAML")
	assert.Contains(t, usage, "TOML")
}
