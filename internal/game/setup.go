package game

import (
	"github.com/Faultbox/cubefield/internal/config"
	"github.com/Faultbox/cubefield/internal/engine/camera"
	"github.com/Faultbox/cubefield/internal/locomotion"
	"github.com/Faultbox/cubefield/internal/physics"
	"github.com/Faultbox/cubefield/internal/scene"
)

func groundConfig(cfg *config.Config) scene.GroundConfig {
	return scene.GroundConfig{
		TileSize: cfg.World.TileSize,
		Spacing:  cfg.World.TileSpacing,
		Rings:    cfg.World.Rings,
		PlaneY:   cfg.World.PlaneY,
	}
}

func controllerConfig(cfg *config.Config) locomotion.Config {
	sim := cfg.Simulation
	return locomotion.Config{
		FreeSpeed:        sim.FreeSpeed,
		POVSpeed:         sim.POVSpeed,
		POVEyeHeight:     sim.POVEyeHeight,
		RotationSpeed:    sim.RotationSpeed,
		KeyRotationStep:  sim.KeyRotationStep,
		MouseDecay:       sim.MouseDecay,
		DragSensitivity:  sim.DragSensitivity,
		DragMaxFactor:    sim.DragMaxFactor,
		SpinRate:         sim.SpinRate,
		InitialPitch:     sim.InitialPitch,
		ContactThreshold: sim.ContactThreshold,
		Projection: camera.Projection{
			FovDeg: cfg.Display.FovDeg,
			Near:   cfg.Display.Near,
			Far:    cfg.Display.Far,
		},
		Gravity: physics.Gravity{
			Strength:        sim.Gravity,
			Scale:           sim.GravityScale,
			CorrectionScale: sim.CorrectionScale,
		},
		Wander: locomotion.WanderConfig{
			Interval:     cfg.Wander.Interval,
			TurnRate:     cfg.Wander.TurnRate,
			BaseSpeed:    cfg.Wander.BaseSpeed,
			MinSpeed:     cfg.Wander.MinSpeed,
			MaxSpeed:     cfg.Wander.MaxSpeed,
			VisitWeight:  cfg.Wander.VisitWeight,
			CellSize:     cfg.Wander.CellSize,
			BoundsMargin: cfg.Wander.BoundsMargin,
			Lookahead:    cfg.Wander.Lookahead,
		},
		Boost: locomotion.BoostConfig{
			Multiplier: cfg.Boost.Multiplier,
			Distance:   cfg.Boost.Distance,
		},
	}
}
