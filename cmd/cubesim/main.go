// Package main runs the cube simulation headless.
//
// Usage: cubesim [flags] [target-fps]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/cubefield/internal/config"
	"github.com/Faultbox/cubefield/internal/engine/input"
	"github.com/Faultbox/cubefield/internal/game"
	"github.com/Faultbox/cubefield/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Cubefield simulation ===", zap.Int("target_fps", cfg.Display.TargetFPS))
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	var source game.InputSource = game.IdleSource{}
	if cfg.Run.Script != "" {
		replay, err := input.LoadScript(cfg.Run.Script)
		if err != nil {
			logger.Error("failed to load input script", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("Replaying input script",
			zap.String("path", cfg.Run.Script),
			zap.Int("events", replay.Len()))
		source = replay
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(cfg)
	if err := g.Run(ctx, game.WallClock{}, source); err != nil {
		logger.Error("simulation error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	s := g.Summary()
	fmt.Printf("run %s: %d frames, %d steps, final position (%.2f, %.2f, %.2f), %d cells visited\n",
		s.RunID, s.Frames, s.Steps, s.Position[0], s.Position[1], s.Position[2], s.Cells)
}
