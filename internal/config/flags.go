package config

import (
	"flag"
	"fmt"
	"strconv"
)

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagSeed     = flag.Int64("seed", -1, "Wander random seed (negative keeps the configured seed)")
	flagDuration = flag.Duration("duration", 0, "Stop after this much wall-clock time")
	flagPOV      = flag.Bool("pov", false, "Start in cube-POV mode")
	flagScript   = flag.String("script", "", "Input replay script (YAML)")
	flagWidth    = flag.Int("width", 0, "Viewport width")
	flagHeight   = flag.Int("height", 0, "Viewport height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Display.DebugLines = true
	}
	if *flagSeed >= 0 {
		cfg.Simulation.Seed = uint64(*flagSeed)
	}
	if *flagDuration > 0 {
		cfg.Run.Duration = *flagDuration
	}
	if *flagPOV {
		cfg.Run.StartInPOV = true
	}
	if *flagScript != "" {
		cfg.Run.Script = *flagScript
	}
	if *flagWidth > 0 {
		cfg.Display.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Display.Height = *flagHeight
	}
}

// applyArgs applies the optional positional target FPS.
func applyArgs(cfg *Config, args []string) {
	if len(args) == 0 {
		return
	}
	fps, warning := TargetFPSFromArgs(args)
	cfg.Display.TargetFPS = fps
	if warning != "" {
		cfg.Warnings = append(cfg.Warnings, warning)
	}
}

// TargetFPSFromArgs reads the target FPS from the first positional
// argument. Missing, malformed or non-positive values give
// DefaultTargetFPS; the latter two also return a warning.
func TargetFPSFromArgs(args []string) (int, string) {
	if len(args) == 0 {
		return DefaultTargetFPS, ""
	}
	fps, err := strconv.Atoi(args[0])
	if err != nil || fps <= 0 {
		return DefaultTargetFPS, fmt.Sprintf("invalid target FPS %q, using %d", args[0], DefaultTargetFPS)
	}
	return fps, ""
}
