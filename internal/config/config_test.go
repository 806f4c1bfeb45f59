package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Display.TargetFPS != 144 {
		t.Errorf("expected target fps 144, got %d", cfg.Display.TargetFPS)
	}
	if cfg.Display.FovDeg != 45 || cfg.Display.Near != 0.1 || cfg.Display.Far != 100 {
		t.Errorf("unexpected projection %v/%v/%v", cfg.Display.FovDeg, cfg.Display.Near, cfg.Display.Far)
	}
	if cfg.Simulation.FixedStep != 1.0/60.0 {
		t.Errorf("expected fixed step 1/60, got %v", cfg.Simulation.FixedStep)
	}
	if cfg.Simulation.MaxFrameTime != 0.1 {
		t.Errorf("expected max frame time 0.1, got %v", cfg.Simulation.MaxFrameTime)
	}
	if cfg.Simulation.MaxSteps != 5 {
		t.Errorf("expected max steps 5, got %d", cfg.Simulation.MaxSteps)
	}
	if cfg.Simulation.Gravity != 9.8 {
		t.Errorf("expected gravity 9.8, got %v", cfg.Simulation.Gravity)
	}
	if cfg.Simulation.ContactThreshold != 0.5 {
		t.Errorf("expected contact threshold 0.5, got %v", cfg.Simulation.ContactThreshold)
	}
	if cfg.Boost.Multiplier != 2.5 || cfg.Boost.Distance != 10 {
		t.Errorf("unexpected boost %+v", cfg.Boost)
	}
	if cfg.World.Rings != 1 || cfg.World.PlaneY != -1 {
		t.Errorf("unexpected world %+v", cfg.World)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
display:
  width: 1920
  height: 1080
  vsync: true
simulation:
  max_steps: 3
  seed: 99
wander:
  interval: 2
world:
  rings: 2
run:
  duration: 30s
logging:
  level: debug
  log_file: cubesim.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Display.Width != 1920 || cfg.Display.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Display.Width, cfg.Display.Height)
	}
	if !cfg.Display.VSync {
		t.Error("expected vsync to be true")
	}
	if cfg.Simulation.MaxSteps != 3 {
		t.Errorf("expected max steps 3, got %d", cfg.Simulation.MaxSteps)
	}
	if cfg.Simulation.Seed != 99 {
		t.Errorf("expected seed 99, got %d", cfg.Simulation.Seed)
	}
	if cfg.Wander.Interval != 2 {
		t.Errorf("expected wander interval 2, got %v", cfg.Wander.Interval)
	}
	if cfg.World.Rings != 2 {
		t.Errorf("expected 2 rings, got %d", cfg.World.Rings)
	}
	if cfg.Run.Duration != 30*time.Second {
		t.Errorf("expected duration 30s, got %v", cfg.Run.Duration)
	}
	if cfg.Logging.LogFile != "cubesim.log" {
		t.Errorf("expected log file 'cubesim.log', got %s", cfg.Logging.LogFile)
	}

	// Untouched values keep their defaults.
	if cfg.Simulation.FixedStep != 1.0/60.0 {
		t.Errorf("expected default fixed step, got %v", cfg.Simulation.FixedStep)
	}
	if cfg.Boost.Multiplier != 2.5 {
		t.Errorf("expected default boost multiplier, got %v", cfg.Boost.Multiplier)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
display:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fixed step", func(c *Config) { c.Simulation.FixedStep = 0 }},
		{"frame shorter than step", func(c *Config) { c.Simulation.MaxFrameTime = 0.001 }},
		{"no steps", func(c *Config) { c.Simulation.MaxSteps = 0 }},
		{"three rings", func(c *Config) { c.World.Rings = 3 }},
		{"zero rings", func(c *Config) { c.World.Rings = 0 }},
		{"far before near", func(c *Config) { c.Display.Far = 0.05 }},
		{"zero width", func(c *Config) { c.Display.Width = 0 }},
		{"decay above one", func(c *Config) { c.Simulation.MouseDecay = 1.5 }},
		{"speed range", func(c *Config) { c.Wander.MinSpeed = 10 }},
		{"zero cell", func(c *Config) { c.Wander.CellSize = 0 }},
		{"zero boost distance", func(c *Config) { c.Boost.Distance = 0 }},
		{"negative duration", func(c *Config) { c.Run.Duration = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestTargetFPSFromArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		warning bool
	}{
		{"none", nil, 144, false},
		{"valid", []string{"60"}, 60, false},
		{"extra args ignored", []string{"240", "x"}, 240, false},
		{"zero", []string{"0"}, 144, true},
		{"negative", []string{"-30"}, 144, true},
		{"garbage", []string{"fast"}, 144, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warning := TargetFPSFromArgs(tt.args)
			if got != tt.want {
				t.Errorf("TargetFPSFromArgs(%v) = %d, want %d", tt.args, got, tt.want)
			}
			if (warning != "") != tt.warning {
				t.Errorf("TargetFPSFromArgs(%v) warning = %q, want warning %v", tt.args, warning, tt.warning)
			}
		})
	}
}

func TestApplyArgs(t *testing.T) {
	cfg := Default()
	applyArgs(cfg, []string{"75"})
	if cfg.Display.TargetFPS != 75 {
		t.Errorf("expected target fps 75, got %d", cfg.Display.TargetFPS)
	}

	cfg = Default()
	applyArgs(cfg, []string{"abc"})
	if cfg.Display.TargetFPS != 144 {
		t.Errorf("expected fallback 144, got %d", cfg.Display.TargetFPS)
	}
	if len(cfg.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", cfg.Warnings)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("display:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Display.DebugLines {
					t.Error("expected debug lines with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "seed flag",
			setup: func() { *flagSeed = 7 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Simulation.Seed != 7 {
					t.Errorf("expected seed 7, got %d", cfg.Simulation.Seed)
				}
			},
			teardown: func() { *flagSeed = -1 },
		},
		{
			name:  "unset seed keeps config",
			setup: func() {},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Simulation.Seed != 1 {
					t.Errorf("expected default seed 1, got %d", cfg.Simulation.Seed)
				}
			},
			teardown: func() {},
		},
		{
			name: "run flags",
			setup: func() {
				*flagDuration = 3 * time.Second
				*flagPOV = true
				*flagScript = "demo.yaml"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Run.Duration != 3*time.Second {
					t.Errorf("expected duration 3s, got %v", cfg.Run.Duration)
				}
				if !cfg.Run.StartInPOV {
					t.Error("expected start in POV")
				}
				if cfg.Run.Script != "demo.yaml" {
					t.Errorf("expected script demo.yaml, got %s", cfg.Run.Script)
				}
			},
			teardown: func() {
				*flagDuration = 0
				*flagPOV = false
				*flagScript = ""
			},
		},
		{
			name: "size flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Display.Width != 2560 || cfg.Display.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Display.Width, cfg.Display.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
display:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Display.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Display.Width)
	}
	if cfg.Display.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Display.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("world:\n  rings: 5\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Simulation.Seed = 1234
	cfg.Warnings = []string{"not persisted"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Simulation.Seed != 1234 {
		t.Errorf("expected seed 1234 after reload, got %d", loaded.Simulation.Seed)
	}
	if len(loaded.Warnings) != 0 {
		t.Errorf("warnings must not be saved, got %v", loaded.Warnings)
	}
}
