// Package config loads the settings of the arbor command from YAML or TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/behavior"
	"github.com/aretw0/arbor/pkg/runner"
)

// Demo names accepted in Config.Demo.Name.
const (
	DemoPickAndPlace = "pick_and_place"
	DemoGripper      = "gripper"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config holds the settings of a run.
type Config struct {
	LogLevel    string        `mapstructure:"log_level" yaml:"log_level"`
	Interval    time.Duration `mapstructure:"interval" yaml:"interval"`
	MaxTicks    uint64        `mapstructure:"max_ticks" yaml:"max_ticks"`
	StopOn      []string      `mapstructure:"stop_on" yaml:"stop_on"`
	MetricsAddr string        `mapstructure:"metrics_addr" yaml:"metrics_addr"`
	Demo        Demo          `mapstructure:"demo" yaml:"demo"`
}

// Demo selects and parameterizes the demo controller.
type Demo struct {
	Name string `mapstructure:"name" yaml:"name"`

	// Pick and place: ticks after which the operator supplies each position.
	PickAfter  uint64 `mapstructure:"pick_after" yaml:"pick_after"`
	PlaceAfter uint64 `mapstructure:"place_after" yaml:"place_after"`

	// Gripper: starting battery percentage and drain per tick.
	Battery      int `mapstructure:"battery" yaml:"battery"`
	BatteryDrain int `mapstructure:"battery_drain" yaml:"battery_drain"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Interval: runner.DefaultInterval,
		MaxTicks: 50,
		StopOn:   []string{"success"},
		Demo: Demo{
			Name:         DemoPickAndPlace,
			PickAfter:    2,
			PlaceAfter:   4,
			Battery:      100,
			BatteryDrain: 0,
		},
	}
}

// Load reads path and overlays it on Default. Files ending in .toml are read
// as TOML, everything else as YAML.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}
	return Parse(data)
}

// Parse decodes YAML data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return overlay(raw)
}

// ParseTOML decodes TOML data over Default and validates the result.
func ParseTOML(data []byte) (Config, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return overlay(raw)
}

func overlay(raw map[string]any) (Config, error) {
	cfg := Default()
	if len(raw) > 0 {
		if err := Decode(raw, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode overlays raw onto cfg. Durations may be given as strings ("250ms").
// Lists replace the existing value instead of merging. Unknown keys are rejected.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		ZeroFields:       true,
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %s", ErrInvalid, c.Interval)
	}
	if _, err := c.StopStatuses(); err != nil {
		return fmt.Errorf("%w: stop_on: %w", ErrInvalid, err)
	}
	switch c.Demo.Name {
	case DemoPickAndPlace, DemoGripper:
	default:
		return fmt.Errorf("%w: unknown demo %q", ErrInvalid, c.Demo.Name)
	}
	if c.Demo.Battery < 0 || c.Demo.Battery > 100 {
		return fmt.Errorf("%w: battery must be within 0..100, got %d", ErrInvalid, c.Demo.Battery)
	}
	return nil
}

// StopStatuses parses StopOn.
func (c Config) StopStatuses() ([]behavior.Status, error) {
	out := make([]behavior.Status, 0, len(c.StopOn))
	for _, s := range c.StopOn {
		status, err := behavior.ParseStatus(s)
		if err != nil {
			return nil, err
		}
		out = append(out, status)
	}
	return out, nil
}
