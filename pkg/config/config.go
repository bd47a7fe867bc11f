package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config represents the complete application configuration.
// Every tunable the simulation and the scope renderers use lives here;
// nothing in the core packages reads package-level globals.
type Config struct {
	Scope   ScopeConfig   `json:"scope"`
	Timing  TimingConfig  `json:"timing"`
	Motion  MotionConfig  `json:"motion"`
	Fleet   []FleetEntry  `json:"fleet"`
	Display DisplayConfig `json:"display"`
}

// ScopeConfig defines the virtual tactical coordinate space.
type ScopeConfig struct {
	// VirtualMax is the upper bound of the virtual coordinate space.
	// Simulation state always lives in [0, VirtualMax]².
	VirtualMax float64 `json:"virtual_max"`

	// RadiusFactor is the scope circle radius as a fraction of the
	// display extent (default leaves a 20-unit margin at the edge)
	RadiusFactor float64 `json:"radius_factor"`

	// RangeRings is the number of concentric range rings inside the scope
	RangeRings int `json:"range_rings"`

	// GridTicks is the number of coordinate intervals labelled on each axis
	GridTicks int `json:"grid_ticks"`
}

// TimingConfig drives the simulation clock and the sweep animation.
type TimingConfig struct {
	// TickMillis is the fixed simulation/render interval in milliseconds
	// (default: 33, i.e. ~30 Hz)
	TickMillis int `json:"tick_millis"`

	// SweepSpeed is the sweep line rotation in radians per tick
	SweepSpeed float64 `json:"sweep_speed"`
}

// TickInterval returns the simulation interval as a time.Duration.
func (c TimingConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// MotionConfig controls the aircraft motion model.
type MotionConfig struct {
	// BaseSpeed is the minimum aircraft speed in virtual units per tick
	BaseSpeed float64 `json:"base_speed"`

	// SpeedJitter is the additional random speed in virtual units per tick.
	// Each aircraft gets BaseSpeed + rand*SpeedJitter at creation and keeps
	// it for the whole run.
	SpeedJitter float64 `json:"speed_jitter"`

	// ArrivalEpsilon is the remaining distance below which an aircraft is
	// considered to have reached its destination
	ArrivalEpsilon float64 `json:"arrival_epsilon"`

	// TrailLength is the maximum number of trail points kept per aircraft
	TrailLength int `json:"trail_length"`
}

// FleetEntry declares one aircraft of the fixed startup manifest.
// The fleet never grows or shrinks during a run.
type FleetEntry struct {
	// Code is the unique identifier the operator uses in commands
	Code string `json:"code"`

	// Color is the hex display color for the aircraft and its trail
	Color string `json:"color"`
}

// DisplayConfig holds the phosphor look shared by the frontends.
type DisplayConfig struct {
	// Glow is the bright phosphor color for the scope outline and sweep
	Glow string `json:"glow"`

	// Dim is the faded phosphor color for rings, crosshairs and markers
	Dim string `json:"dim"`

	// Background is the scope background color
	Background string `json:"background"`
}

// Load reads configuration from a JSON file.
// If the file doesn't exist, returns the default configuration.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	return &cfg, nil
}

// Save writes the configuration to a JSON file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a configuration with the stock WWII intercept
// scenario: a 600x600 tactical grid and five aircraft.
func DefaultConfig() *Config {
	return &Config{
		Scope: ScopeConfig{
			VirtualMax:   600.0,
			RadiusFactor: 0.5 - 20.0/600.0,
			RangeRings:   3,
			GridTicks:    6,
		},
		Timing: TimingConfig{
			TickMillis: 33,
			SweepSpeed: 0.05,
		},
		Motion: MotionConfig{
			BaseSpeed:      0.35,
			SpeedJitter:    0.15,
			ArrivalEpsilon: 1.0,
			TrailLength:    5,
		},
		Fleet: []FleetEntry{
			{Code: "FW190", Color: "#FFD700"},
			{Code: "SPITF", Color: "#A8E6CF"},
			{Code: "BF109", Color: "#FF8C94"},
			{Code: "P51MUS", Color: "#99C1DE"},
			{Code: "MOSSI", Color: "#E0BBE4"},
		},
		Display: DisplayConfig{
			Glow:       "#00FF00",
			Dim:        "#006600",
			Background: "#000000",
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the
// config, so the tick rate and scope size can be adjusted without editing
// the config file.
func (c *Config) applyEnvironmentOverrides() {
	if tick := os.Getenv("GCI_SCOPE_TICK_MILLIS"); tick != "" {
		if v, err := strconv.Atoi(tick); err == nil && v > 0 {
			c.Timing.TickMillis = v
		}
	}
	if max := os.Getenv("GCI_SCOPE_VIRTUAL_MAX"); max != "" {
		if v, err := strconv.ParseFloat(max, 64); err == nil && v > 0 {
			c.Scope.VirtualMax = v
		}
	}
	if speed := os.Getenv("GCI_SCOPE_BASE_SPEED"); speed != "" {
		if v, err := strconv.ParseFloat(speed, 64); err == nil && v > 0 {
			c.Motion.BaseSpeed = v
		}
	}
}
