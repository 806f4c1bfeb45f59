package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubefield/internal/collision"
	"github.com/Faultbox/cubefield/internal/engine/input"
	"github.com/Faultbox/cubefield/internal/engine/picking"
	"github.com/Faultbox/cubefield/internal/locomotion"
	"github.com/Faultbox/cubefield/internal/scene"
)

// Overlay holds the debug values shown on top of the scene.
type Overlay struct {
	RunID     string
	TargetFPS int
	FPS       float64

	Pitch, Yaw float32
	CubePos    mgl32.Vec3
	CameraPos  mgl32.Vec3

	POV       bool
	MouseLook bool

	Contact     collision.Contact
	TotalPlanes int

	BoostActive   bool
	BoostTraveled float32

	CursorGround   mgl32.Vec3
	CursorOnGround bool
}

// Update refreshes the overlay from the simulation state. viewProj is the
// projection times view used for the cursor ground query.
func (o *Overlay) Update(s *locomotion.State, in input.Snapshot, viewProj mgl32.Mat4, fps float64, planes *scene.Registry) {
	o.FPS = fps
	o.Pitch, o.Yaw = s.Pitch, s.Yaw
	o.CubePos = s.Position
	o.CameraPos = s.Camera.Position
	o.POV = s.POV
	o.MouseLook = s.MouseLook
	o.Contact = s.Contact
	o.TotalPlanes = planes.Len()
	o.BoostActive = s.Boost.Active
	o.BoostTraveled = s.Boost.Traveled

	o.CursorOnGround = false
	if planes.Len() > 0 && in.Width > 0 && in.Height > 0 {
		ray := picking.ScreenToRay(in.Cursor[0], in.Cursor[1], in.Width, in.Height, viewProj.Inv())
		o.CursorGround, o.CursorOnGround = ray.IntersectPlaneY(planes.At(0).Height())
	}
}

// FPSLoss is how far the measured FPS falls short of the target.
func (o *Overlay) FPSLoss() float64 {
	if o.FPS < float64(o.TargetFPS) {
		return float64(o.TargetFPS) - o.FPS
	}
	return 0
}

// Lines renders the overlay as text lines.
func (o *Overlay) Lines() []string {
	mode := "free"
	if o.POV {
		mode = "cube POV"
	}
	if o.MouseLook {
		mode += ", mouse look"
	}

	collisionLine := "Collision: none"
	if o.Contact.Colliding {
		collisionLine = fmt.Sprintf("Collision: plane %d", o.Contact.PlaneIndex)
	}

	boost := "Boost: off"
	if o.BoostActive {
		boost = fmt.Sprintf("Boost: on (%.1f traveled)", o.BoostTraveled)
	}

	cursor := "Cursor: off ground"
	if o.CursorOnGround {
		cursor = fmt.Sprintf("Cursor: (%.2f, %.2f)", o.CursorGround[0], o.CursorGround[2])
	}

	return []string{
		fmt.Sprintf("FPS: %.1f (loss %.1f)", o.FPS, o.FPSLoss()),
		fmt.Sprintf("Cube rotation: (%.1f, %.1f)", o.Pitch, o.Yaw),
		fmt.Sprintf("Cube position: (%.2f, %.2f, %.2f)", o.CubePos[0], o.CubePos[1], o.CubePos[2]),
		fmt.Sprintf("Camera position: (%.2f, %.2f, %.2f)", o.CameraPos[0], o.CameraPos[1], o.CameraPos[2]),
		"Mode: " + mode,
		collisionLine,
		fmt.Sprintf("Total planes: %d", o.TotalPlanes),
		boost,
		cursor,
	}
}
