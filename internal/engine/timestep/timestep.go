// Package timestep decouples the simulation rate from the frame rate with a
// fixed-step accumulator.
package timestep

import (
	"go.uber.org/zap"

	"github.com/Faultbox/cubefield/internal/logger"
)

// Defaults for NewScheduler.
const (
	DefaultFixedStep = 1.0 / 60.0
	DefaultMaxFrame  = 0.1
	DefaultMaxSteps  = 5
)

// capLogEvery limits how often repeated cap hits are reported.
const capLogEvery = 60

// Scheduler drains wall-clock time in fixed simulation steps.
type Scheduler struct {
	FixedStep float64 // seconds per step
	MaxFrame  float64 // longest frame time accepted per tick
	MaxSteps  int     // steps per tick before giving up on catch-up

	previous    float64
	accumulator float64
	started     bool
	steps       uint64
	capHits     uint64
}

// NewScheduler creates a scheduler. Non-positive arguments use the defaults.
func NewScheduler(fixedStep, maxFrame float64, maxSteps int) *Scheduler {
	if fixedStep <= 0 {
		fixedStep = DefaultFixedStep
	}
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrame
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Scheduler{FixedStep: fixedStep, MaxFrame: maxFrame, MaxSteps: maxSteps}
}

// Start sets the reference time and clears the accumulator.
func (s *Scheduler) Start(now float64) {
	s.previous = now
	s.accumulator = 0
	s.started = true
}

// Tick accounts for the time since the previous tick and runs step once per
// whole fixed step available, up to MaxSteps. It returns the number of steps
// run. The first tick only seeds the reference time.
func (s *Scheduler) Tick(now float64, step func(dt float32)) int {
	if !s.started {
		s.Start(now)
		return 0
	}

	dt := now - s.previous
	s.previous = now
	if dt < 0 {
		dt = 0
	}
	if dt > s.MaxFrame {
		dt = s.MaxFrame
	}
	s.accumulator += dt

	n := 0
	for s.accumulator >= s.FixedStep && n < s.MaxSteps {
		step(float32(s.FixedStep))
		s.accumulator -= s.FixedStep
		n++
	}
	s.steps += uint64(n)

	if n == s.MaxSteps && s.accumulator >= s.FixedStep {
		s.capHits++
		if s.capHits%capLogEvery == 1 {
			logger.Warn("Simulation step cap reached",
				zap.Int("max_steps", s.MaxSteps),
				zap.Float64("backlog", s.accumulator),
				zap.Uint64("cap_hits", s.capHits))
		}
	}
	return n
}

// Steps returns the total number of steps run.
func (s *Scheduler) Steps() uint64 {
	return s.steps
}

// CapHits counts ticks that stopped at MaxSteps with time still owed.
func (s *Scheduler) CapHits() uint64 {
	return s.capHits
}

// Accumulator returns the time not yet consumed by steps.
func (s *Scheduler) Accumulator() float64 {
	return s.accumulator
}

// Alpha is the fraction of a step left in the accumulator, for
// interpolating between the last two simulation states.
func (s *Scheduler) Alpha() float64 {
	return s.accumulator / s.FixedStep
}

// FPSCounter measures frames per second over one-second windows.
type FPSCounter struct {
	frames  int
	last    float64
	fps     float64
	started bool
}

// Frame records one frame at now. It returns true when a new FPS value was
// computed.
func (c *FPSCounter) Frame(now float64) bool {
	if !c.started {
		c.last = now
		c.started = true
	}

	c.frames++
	elapsed := now - c.last
	if elapsed < 1 {
		return false
	}
	c.fps = float64(c.frames) / elapsed
	c.frames = 0
	c.last = now
	return true
}

// FPS returns the last computed value, zero until the first full second.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}
