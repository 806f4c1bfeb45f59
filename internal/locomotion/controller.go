package locomotion

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefield/internal/collision"
	"github.com/Faultbox/cubefield/internal/engine/camera"
	"github.com/Faultbox/cubefield/internal/engine/input"
	"github.com/Faultbox/cubefield/internal/engine/picking"
	"github.com/Faultbox/cubefield/internal/logger"
	"github.com/Faultbox/cubefield/internal/scene"
	"github.com/Faultbox/cubefield/pkg/geom"
)

// Controller runs one fixed step of cube and camera motion.
type Controller struct {
	cfg      Config
	planes   *scene.Registry
	bounds   geom.Bounds
	detector *collision.Detector
	rng      *rand.Rand
}

// NewController creates a controller over planes. The same seed and input
// sequence always produce the same states.
func NewController(cfg Config, planes *scene.Registry, seed uint64) *Controller {
	return &Controller{
		cfg:      cfg,
		planes:   planes,
		bounds:   planes.Bounds(),
		detector: collision.NewDetector(cfg.ContactThreshold),
		rng:      rand.New(rand.NewPCG(seed, seed)),
	}
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Bounds returns the world bounds used to contain the cube.
func (c *Controller) Bounds() geom.Bounds {
	return c.bounds
}

// Planes returns the plane registry.
func (c *Controller) Planes() *scene.Registry {
	return c.planes
}

// Update advances s by one step of dt seconds.
func (c *Controller) Update(s *State, in input.Snapshot, dt float32) {
	c.applyToggles(s, in)

	factor := s.Boost.Factor(c.cfg.Boost)
	start := s.Position

	// Movement uses the orientation from the previous step.
	c.move(s, in, dt, factor)
	c.rotate(s, in, dt)

	over := !s.POV && in.Drag && c.cursorOverCube(s, in)
	s.Dragging = over

	if !s.POV && s.Contact.Colliding && !over {
		var retarget bool
		s.Position, retarget = s.Wander.Step(s.Position, dt, c.bounds, c.cfg.Wander, c.rng, factor)
		if retarget {
			logger.Debug("Wander target changed",
				zap.Float32("x", s.Wander.Target[0]),
				zap.Float32("z", s.Wander.Target[2]),
				zap.Int("visited_cells", len(s.Wander.Visits)))
		}
	}

	if !s.POV {
		if over {
			c.drag(s, in, dt)
		}
		s.LastCursor = in.Cursor
	}

	s.Position, s.Contact = c.cfg.Gravity.Apply(dt, s.Position, s.ModelMatrix(), c.planes, c.detector)

	if s.POV {
		if s.Contact.Colliding {
			s.Position[1] = c.planes.At(s.Contact.PlaneIndex).Height() + scene.CubeHalfExtent
		}
		s.Camera.Attach(s.Position, c.cfg.POVEyeHeight)
	}

	moved := s.Position.Sub(start)
	if s.Boost.Advance(mgl32.Vec2{moved[0], moved[2]}.Len(), c.cfg.Boost) {
		logger.Info("Boost ended", zap.Float32("traveled", s.Boost.Traveled))
	}

	s.Spin += c.cfg.SpinRate * dt
	s.Steps++
	c.Refresh(s, in.Width, in.Height)
}

// Refresh rebuilds the model, view and MVP matrices from s.
func (c *Controller) Refresh(s *State, width, height int) {
	s.Camera.SetOrientation(s.Pitch, s.Yaw)

	target := s.Position
	if s.POV {
		target = s.Camera.LookAhead()
	}

	s.Model = s.ModelMatrix()
	s.View = s.Camera.ViewMatrix(target)
	s.MVP = c.cfg.Projection.Matrix(aspect(width, height)).Mul4(s.View).Mul4(s.Model)
}

func (c *Controller) applyToggles(s *State, in input.Snapshot) {
	if in.TogglePOV {
		s.POV = !s.POV
		logger.Info("Camera mode changed", zap.Bool("cube_pov", s.POV))
	}
	if in.ToggleMouseLook {
		s.MouseLook = !s.MouseLook
		logger.Info("Mouse look toggled", zap.Bool("enabled", s.MouseLook))
	}
	if in.Boost && s.Boost.Trigger() {
		logger.Info("Boost started", zap.Float32("multiplier", c.cfg.Boost.Multiplier))
	}
}

func (c *Controller) move(s *State, in input.Snapshot, dt, factor float32) {
	var forward, right float32
	if in.Pressed(input.KeyForward) {
		forward++
	}
	if in.Pressed(input.KeyBack) {
		forward--
	}
	if in.Pressed(input.KeyRight) {
		right++
	}
	if in.Pressed(input.KeyLeft) {
		right--
	}
	if forward == 0 && right == 0 {
		return
	}

	s.Camera.SetOrientation(s.Pitch, s.Yaw)
	if !s.POV {
		s.Camera.Move(forward, right, c.cfg.FreeSpeed*dt*factor)
		return
	}

	dir := s.Camera.Forward()
	step := dir.Mul(forward).Add(s.Camera.Right().Mul(right))
	s.Position = s.Position.Add(step.Mul(c.cfg.POVSpeed * dt * factor))
}

func (c *Controller) rotate(s *State, in input.Snapshot, dt float32) {
	if s.MouseLook {
		s.MouseImpulse = s.MouseImpulse.Add(in.MouseDelta)
		s.Yaw += s.MouseImpulse[0] * c.cfg.RotationSpeed * dt
		s.Pitch -= s.MouseImpulse[1] * c.cfg.RotationSpeed * dt
		s.MouseImpulse = s.MouseImpulse.Mul(c.cfg.MouseDecay)
	} else {
		s.MouseImpulse = mgl32.Vec2{}
	}

	step := c.cfg.KeyRotationStep
	if in.Pressed(input.KeyLookUp) {
		s.Pitch -= step
	}
	if in.Pressed(input.KeyLookDown) {
		s.Pitch += step
	}
	if in.Pressed(input.KeyLookLeft) {
		s.Yaw -= step
	}
	if in.Pressed(input.KeyLookRight) {
		s.Yaw += step
	}

	s.Pitch = camera.ClampPitch(s.Pitch)
}

func (c *Controller) cursorOverCube(s *State, in input.Snapshot) bool {
	return picking.PointInMesh(in.Cursor, s.MVP, in.Width, in.Height, scene.CubeCorners(), scene.CubeIndices[:])
}

func (c *Controller) drag(s *State, in input.Snapshot, dt float32) {
	delta := in.Cursor.Sub(s.LastCursor)
	vertical := mgl32.Clamp(c.cfg.DragSensitivity*aspect(in.Width, in.Height), c.cfg.DragSensitivity, c.cfg.DragMaxFactor)

	s.Position[0] += delta[0] * c.cfg.DragSensitivity * dt * 60
	s.Position[2] -= delta[1] * vertical * dt * 60

	s.Position[0] = mgl32.Clamp(s.Position[0], c.bounds.Min[0], c.bounds.Max[0])
	s.Position[2] = mgl32.Clamp(s.Position[2], c.bounds.Min[2], c.bounds.Max[2])
}

func aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
