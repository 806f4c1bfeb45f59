package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubefield/internal/collision"
	"github.com/Faultbox/cubefield/internal/engine/camera"
)

// State is everything the simulation carries between steps.
type State struct {
	Position mgl32.Vec3
	Pitch    float32 // degrees, shared by the cube and the view
	Yaw      float32 // degrees
	Spin     float32 // radians

	Camera camera.FreeCamera

	POV          bool
	MouseLook    bool
	MouseImpulse mgl32.Vec2
	LastCursor   mgl32.Vec2
	Dragging     bool

	Contact collision.Contact
	Boost   Boost
	Wander  *Wander

	Model mgl32.Mat4
	View  mgl32.Mat4
	MVP   mgl32.Mat4

	Steps uint64
}

// NewState returns the initial state: cube at the origin, camera behind and
// above it, free mode.
func NewState(cfg Config) *State {
	return &State{
		Pitch:   camera.ClampPitch(cfg.InitialPitch),
		Camera:  *camera.NewFreeCamera(),
		Contact: collision.None(),
		Wander:  NewWander(),
		Model:   mgl32.Ident4(),
		View:    mgl32.Ident4(),
		MVP:     mgl32.Ident4(),
	}
}

// Direction returns the shared view direction.
func (s *State) Direction() mgl32.Vec3 {
	return camera.Direction(s.Pitch, s.Yaw)
}

// ModelMatrix builds T(position)·Rx(pitch)·Ry(yaw)·Ry(spin).
func (s *State) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(s.Position[0], s.Position[1], s.Position[2]).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(s.Pitch))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(s.Yaw))).
		Mul4(mgl32.HomogRotate3DY(s.Spin))
}
