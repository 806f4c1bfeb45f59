// Package config handles simulation configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all simulation settings.
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	Simulation SimulationConfig `yaml:"simulation"`
	Wander     WanderConfig     `yaml:"wander"`
	Boost      BoostConfig      `yaml:"boost"`
	World      WorldConfig      `yaml:"world"`
	Run        RunConfig        `yaml:"run"`
	Logging    LoggingConfig    `yaml:"logging"`

	// Warnings collects non-fatal problems found while loading, reported
	// once the logger is up.
	Warnings []string `yaml:"-"`
}

// DisplayConfig holds viewport and projection settings.
type DisplayConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	VSync     bool    `yaml:"vsync"`
	TargetFPS int     `yaml:"target_fps"`
	FovDeg    float32 `yaml:"fov_deg"`
	Near      float32 `yaml:"near"`
	Far       float32 `yaml:"far"`

	DebugLines bool `yaml:"debug_lines"` // bounds, cube box and visit heatmap
}

// SimulationConfig holds stepping, physics and control tuning.
type SimulationConfig struct {
	FixedStep        float64 `yaml:"fixed_step"`
	MaxFrameTime     float64 `yaml:"max_frame_time"`
	MaxSteps         int     `yaml:"max_steps"`
	Gravity          float32 `yaml:"gravity"`
	GravityScale     float32 `yaml:"gravity_scale"`
	ContactThreshold float32 `yaml:"contact_threshold"`
	CorrectionScale  float32 `yaml:"correction_scale"`
	FreeSpeed        float32 `yaml:"free_speed"`
	POVSpeed         float32 `yaml:"pov_speed"`
	POVEyeHeight     float32 `yaml:"pov_eye_height"`
	RotationSpeed    float32 `yaml:"rotation_speed"`
	KeyRotationStep  float32 `yaml:"key_rotation_step"`
	MouseDecay       float32 `yaml:"mouse_decay"`
	DragSensitivity  float32 `yaml:"drag_sensitivity"`
	DragMaxFactor    float32 `yaml:"drag_max_factor"`
	SpinRate         float32 `yaml:"spin_rate"`
	InitialPitch     float32 `yaml:"initial_pitch"`
	Seed             uint64  `yaml:"seed"`
}

// WanderConfig holds autonomous wandering tuning.
type WanderConfig struct {
	Interval     float32 `yaml:"interval"`
	TurnRate     float32 `yaml:"turn_rate"`
	BaseSpeed    float32 `yaml:"base_speed"`
	MinSpeed     float32 `yaml:"min_speed"`
	MaxSpeed     float32 `yaml:"max_speed"`
	VisitWeight  float32 `yaml:"visit_weight"`
	CellSize     float32 `yaml:"cell_size"`
	BoundsMargin float32 `yaml:"bounds_margin"`
	Lookahead    float32 `yaml:"lookahead"`
}

// BoostConfig holds speed boost tuning.
type BoostConfig struct {
	Multiplier float32 `yaml:"multiplier"`
	Distance   float32 `yaml:"distance"`
}

// WorldConfig describes the tiled ground.
type WorldConfig struct {
	TileSize    float32 `yaml:"tile_size"`
	TileSpacing float32 `yaml:"tile_spacing"`
	Rings       int     `yaml:"rings"`
	PlaneY      float32 `yaml:"plane_y"`
}

// RunConfig holds settings for headless runs.
type RunConfig struct {
	Duration   time.Duration `yaml:"duration"` // zero runs until quit
	Script     string        `yaml:"script"`
	StartInPOV bool          `yaml:"start_in_pov"`
	LogEvery   time.Duration `yaml:"log_every"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultTargetFPS is used when no valid target is given.
const DefaultTargetFPS = 144

// Default returns a Config with the stock tuning.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:     1280,
			Height:    720,
			VSync:     false,
			TargetFPS: DefaultTargetFPS,
			FovDeg:    45,
			Near:      0.1,
			Far:       100,
		},
		Simulation: SimulationConfig{
			FixedStep:        1.0 / 60.0,
			MaxFrameTime:     0.1,
			MaxSteps:         5,
			Gravity:          9.8,
			GravityScale:     0.01,
			ContactThreshold: 0.5,
			CorrectionScale:  0.01,
			FreeSpeed:        12,
			POVSpeed:         3,
			POVEyeHeight:     0.5,
			RotationSpeed:    1,
			KeyRotationStep:  1,
			MouseDecay:       0.9,
			DragSensitivity:  0.002,
			DragMaxFactor:    0.01,
			SpinRate:         0,
			InitialPitch:     45,
			Seed:             1,
		},
		Wander: WanderConfig{
			Interval:     1,
			TurnRate:     2,
			BaseSpeed:    2,
			MinSpeed:     1,
			MaxSpeed:     5,
			VisitWeight:  0.5,
			CellSize:     1,
			BoundsMargin: 0.1,
			Lookahead:    1,
		},
		Boost: BoostConfig{
			Multiplier: 2.5,
			Distance:   10,
		},
		World: WorldConfig{
			TileSize:    12,
			TileSpacing: 12,
			Rings:       1,
			PlaneY:      -1,
		},
		Run: RunConfig{
			LogEvery: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting the simulation cannot run with.
func (c *Config) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Display.Width > 0 && c.Display.Height > 0, "display size must be positive"},
		{c.Display.TargetFPS >= 0, "target_fps must not be negative"},
		{c.Display.FovDeg > 0 && c.Display.FovDeg < 180, "fov_deg must be in (0, 180)"},
		{c.Display.Near > 0 && c.Display.Far > c.Display.Near, "need 0 < near < far"},
		{c.Simulation.FixedStep > 0, "fixed_step must be positive"},
		{c.Simulation.MaxFrameTime >= c.Simulation.FixedStep, "max_frame_time must be at least fixed_step"},
		{c.Simulation.MaxSteps >= 1, "max_steps must be at least 1"},
		{c.Simulation.ContactThreshold > 0, "contact_threshold must be positive"},
		{c.Simulation.MouseDecay >= 0 && c.Simulation.MouseDecay <= 1, "mouse_decay must be in [0, 1]"},
		{c.Simulation.DragMaxFactor >= c.Simulation.DragSensitivity, "drag_max_factor must be at least drag_sensitivity"},
		{c.Wander.Interval > 0, "wander interval must be positive"},
		{c.Wander.CellSize > 0, "wander cell_size must be positive"},
		{c.Wander.MinSpeed <= c.Wander.MaxSpeed, "wander min_speed exceeds max_speed"},
		{c.Wander.BoundsMargin >= 0, "wander bounds_margin must not be negative"},
		{c.Boost.Multiplier > 0, "boost multiplier must be positive"},
		{c.Boost.Distance > 0, "boost distance must be positive"},
		{c.World.TileSize > 0 && c.World.TileSpacing > 0, "tile size and spacing must be positive"},
		{c.World.Rings >= 1 && c.World.Rings <= 2, "world rings must be 1 or 2"},
		{c.Run.Duration >= 0, "run duration must not be negative"},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.msg)
		}
	}
	return nil
}
