// Package locomotion advances the cube and camera by one fixed step.
package locomotion

import (
	"github.com/Faultbox/cubefield/internal/engine/camera"
	"github.com/Faultbox/cubefield/internal/physics"
)

// Config holds the tunables of the controller.
type Config struct {
	FreeSpeed        float32 // camera units per second in free mode
	POVSpeed         float32 // cube units per second in cube-POV mode
	POVEyeHeight     float32
	RotationSpeed    float32 // degrees per pixel of mouse impulse per second
	KeyRotationStep  float32 // degrees per step while an arrow key is held
	MouseDecay       float32
	DragSensitivity  float32
	DragMaxFactor    float32
	SpinRate         float32 // radians per second of extra cube spin
	InitialPitch     float32
	ContactThreshold float32

	Projection camera.Projection
	Gravity    physics.Gravity
	Wander     WanderConfig
	Boost      BoostConfig
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		FreeSpeed:        12,
		POVSpeed:         3,
		POVEyeHeight:     0.5,
		RotationSpeed:    1,
		KeyRotationStep:  1,
		MouseDecay:       0.9,
		DragSensitivity:  0.002,
		DragMaxFactor:    0.01,
		InitialPitch:     45,
		ContactThreshold: 0.5,
		Projection:       camera.DefaultProjection(),
		Gravity:          physics.NewGravity(),
		Wander:           DefaultWanderConfig(),
		Boost:            DefaultBoostConfig(),
	}
}
