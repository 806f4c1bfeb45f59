// Package game drives the simulation: input, fixed-step updates, overlay
// and hand-off to a renderer, once per frame.
package game

import (
	"context"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefield/internal/config"
	"github.com/Faultbox/cubefield/internal/engine/camera"
	"github.com/Faultbox/cubefield/internal/engine/debug"
	"github.com/Faultbox/cubefield/internal/engine/input"
	"github.com/Faultbox/cubefield/internal/engine/timestep"
	"github.com/Faultbox/cubefield/internal/locomotion"
	"github.com/Faultbox/cubefield/internal/logger"
	"github.com/Faultbox/cubefield/internal/scene"
)

// Clock abstracts wall time so runs can be driven by a fake clock.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// WallClock is the real clock.
type WallClock struct{}

// Now returns time.Now().
func (WallClock) Now() time.Time { return time.Now() }

// Sleep blocks for d.
func (WallClock) Sleep(d time.Duration) { time.Sleep(d) }

// InputSource yields the events that happened by elapsed run time.
type InputSource interface {
	Due(elapsed time.Duration) []input.Event
}

// IdleSource produces no input.
type IdleSource struct{}

// Due returns nothing.
func (IdleSource) Due(time.Duration) []input.Event { return nil }

// Option configures a Game.
type Option func(*Game)

// WithRenderer sets the renderer that receives every frame.
func WithRenderer(r Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

// Game is one simulation run.
type Game struct {
	cfg        *config.Config
	runID      string
	log        *zap.Logger
	planes     *scene.Registry
	controller *locomotion.Controller
	state      *locomotion.State
	projection camera.Projection
	scheduler  *timestep.Scheduler
	fps        timestep.FPSCounter
	tracker    *input.Tracker
	renderer   Renderer
	overlay    Overlay

	carry   input.Snapshot // edges not yet seen by a step
	frames  uint64
	lastLog float64
}

// New builds a run from cfg. cfg is expected to be validated.
func New(cfg *config.Config, opts ...Option) *Game {
	runID := uuid.NewString()
	planes := scene.TiledGround(groundConfig(cfg))
	locoCfg := controllerConfig(cfg)

	g := &Game{
		cfg:        cfg,
		runID:      runID,
		log:        logger.With(zap.String("run", runID)),
		planes:     planes,
		controller: locomotion.NewController(locoCfg, planes, cfg.Simulation.Seed),
		state:      locomotion.NewState(locoCfg),
		projection: locoCfg.Projection,
		scheduler:  timestep.NewScheduler(cfg.Simulation.FixedStep, cfg.Simulation.MaxFrameTime, cfg.Simulation.MaxSteps),
		tracker:    input.NewTracker(cfg.Display.Width, cfg.Display.Height),
		renderer:   NopRenderer{},
		overlay:    Overlay{TargetFPS: cfg.Display.TargetFPS, RunID: runID},
	}
	for _, opt := range opts {
		opt(g)
	}

	g.state.POV = cfg.Run.StartInPOV
	g.controller.Refresh(g.state, cfg.Display.Width, cfg.Display.Height)

	g.log.Info("Simulation created",
		zap.Int("planes", planes.Len()),
		zap.Uint64("seed", cfg.Simulation.Seed),
		zap.Float64("fixed_step", g.scheduler.FixedStep),
		zap.Int("target_fps", cfg.Display.TargetFPS))
	return g
}

// RunID returns the unique id of this run.
func (g *Game) RunID() string { return g.runID }

// State returns the live simulation state.
func (g *Game) State() *locomotion.State { return g.state }

// Planes returns the plane registry.
func (g *Game) Planes() *scene.Registry { return g.planes }

// Scheduler returns the fixed-step scheduler.
func (g *Game) Scheduler() *timestep.Scheduler { return g.scheduler }

// Overlay returns the last overlay values.
func (g *Game) Overlay() Overlay { return g.overlay }

// Tracker returns the input tracker fed by Run.
func (g *Game) Tracker() *input.Tracker { return g.tracker }

// Frame runs one frame at now seconds: as many fixed steps as the scheduler
// allows, then the overlay and renderer. It returns the steps run.
//
// One-shot edges reach only the first step of a frame; frames that run no
// step carry them forward.
func (g *Game) Frame(now float64, in input.Snapshot) int {
	in = g.carry.Merge(in)

	consumed := false
	n := g.scheduler.Tick(now, func(dt float32) {
		snap := in
		if consumed {
			snap = in.WithoutEdges()
		}
		consumed = true
		g.controller.Update(g.state, snap, dt)
	})
	if consumed {
		g.carry = input.Snapshot{}
	} else {
		g.carry = in
		g.controller.Refresh(g.state, in.Width, in.Height)
	}

	g.frames++
	fpsUpdated := g.fps.Frame(now)

	viewProj := g.projection.Matrix(aspectOf(in.Width, in.Height)).Mul4(g.state.View)
	g.overlay.Update(g.state, in, viewProj, g.fps.FPS(), g.planes)
	lines := g.overlay.Lines()
	if fpsUpdated {
		g.log.Debug("Overlay", zap.Strings("lines", lines))
	}

	frame := FrameData{
		Model:   g.state.Model,
		MVP:     g.state.MVP,
		Planes:  g.planes.All(),
		Overlay: lines,
	}
	if g.cfg.Display.DebugLines {
		g.addDebugGeometry(&frame)
	}
	g.renderer.Draw(frame)

	if every := g.cfg.Run.LogEvery.Seconds(); every > 0 && now-g.lastLog >= every {
		g.lastLog = now
		g.log.Info("Simulation status",
			zap.Uint64("steps", g.scheduler.Steps()),
			zap.Float64("fps", g.fps.FPS()),
			zap.Bool("colliding", g.state.Contact.Colliding),
			zap.Int("plane", g.state.Contact.PlaneIndex),
			zap.Float32s("position", g.state.Position[:]))
	}
	return n
}

func (g *Game) addDebugGeometry(f *FrameData) {
	f.Lines = debug.BoxWireframe(g.planes.Bounds(), debug.BoundsColor)
	cube := debug.PointsBounds(scene.CubeWorldVertices(g.state.Model), 0.05)
	f.Lines = append(f.Lines, debug.BoxWireframe(cube, debug.CubeColor)...)

	if g.planes.Len() > 0 {
		f.Heatmap = debug.VisitHeatmap(g.state.Wander.Visits, g.cfg.Wander.CellSize, g.planes.At(0).Height())
	}
}

// Run loops frames until ctx is done, the input asks to quit or the
// configured duration has passed. Without vsync the loop sleeps to hold the
// target frame rate.
func (g *Game) Run(ctx context.Context, clock Clock, source InputSource) error {
	start := clock.Now()

	var budget time.Duration
	if !g.cfg.Display.VSync && g.cfg.Display.TargetFPS > 0 {
		budget = time.Second / time.Duration(g.cfg.Display.TargetFPS)
	}

	g.log.Info("Starting simulation loop",
		zap.Duration("frame_budget", budget),
		zap.Duration("duration", g.cfg.Run.Duration))

	reason := "quit"
	for {
		if ctx.Err() != nil {
			reason = "interrupted"
			break
		}

		frameStart := clock.Now()
		elapsed := frameStart.Sub(start)
		if g.cfg.Run.Duration > 0 && elapsed >= g.cfg.Run.Duration {
			reason = "duration reached"
			break
		}

		g.tracker.ApplyAll(source.Due(elapsed))
		snap := g.tracker.Snapshot()
		if snap.Quit {
			break
		}

		g.Frame(elapsed.Seconds(), snap)

		if budget > 0 {
			if spent := clock.Now().Sub(frameStart); spent < budget {
				clock.Sleep(budget - spent)
			}
		}
	}

	s := g.Summary()
	g.log.Info("Simulation stopped",
		zap.String("reason", reason),
		zap.Uint64("frames", s.Frames),
		zap.Uint64("steps", s.Steps),
		zap.Uint64("cap_hits", s.CapHits),
		zap.Float32s("position", s.Position[:]),
		zap.Int("visits", s.Visits),
		zap.Int("cells", s.Cells))
	return nil
}

// Summary describes a run so far.
type Summary struct {
	RunID    string
	Frames   uint64
	Steps    uint64
	CapHits  uint64
	Position mgl32.Vec3
	Visits   int
	Cells    int
}

// Summary reports counters and the cube's final state.
func (g *Game) Summary() Summary {
	return Summary{
		RunID:    g.runID,
		Frames:   g.frames,
		Steps:    g.scheduler.Steps(),
		CapHits:  g.scheduler.CapHits(),
		Position: g.state.Position,
		Visits:   g.state.Wander.TotalVisits,
		Cells:    len(g.state.Wander.Visits),
	}
}

func aspectOf(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
