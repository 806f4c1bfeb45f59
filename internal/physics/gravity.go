// Package physics applies gravity and soft contact correction to the cube.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubefield/internal/collision"
	"github.com/Faultbox/cubefield/internal/scene"
)

// Default gravity constants.
const (
	DefaultStrength        = 9.8
	DefaultScale           = 0.01
	DefaultCorrectionScale = 0.01
)

var down = mgl32.Vec3{0, -1, 0}

// Gravity is a constant acceleration that turns into a restoring force
// towards whatever surface the cube touches.
type Gravity struct {
	Strength float32
	// Scale damps the gravity displacement per step.
	Scale float32
	// CorrectionScale damps the penetration push-out per step.
	CorrectionScale float32
}

// NewGravity returns gravity with the default constants.
func NewGravity() Gravity {
	return Gravity{
		Strength:        DefaultStrength,
		Scale:           DefaultScale,
		CorrectionScale: DefaultCorrectionScale,
	}
}

// Apply advances position by one step of dt seconds. model is the cube
// transform used for the contact query; the returned Contact is that
// query's result.
//
// Without contact the cube is pulled straight down. With contact it is
// pulled along the negated plane normal, after first being pushed along the
// normal by the smallest penetration among vertices on the negative side of
// the plane.
func (g Gravity) Apply(dt float32, position mgl32.Vec3, model mgl32.Mat4, planes *scene.Registry, d *collision.Detector) (mgl32.Vec3, collision.Contact) {
	dir := down

	contact := d.Detect(model, planes)
	if contact.Colliding {
		plane := planes.At(contact.PlaneIndex)
		normal := contact.Normal
		dir = normal.Mul(-1)

		if pen, ok := MinPenetration(scene.CubeWorldVertices(model), plane.WorldVertices()[0], normal); ok {
			position = position.Add(normal.Mul(pen * dt * g.CorrectionScale))
		}
	}

	position = position.Add(dir.Mul(g.Strength * dt * g.Scale))
	return position, contact
}

// MinPenetration returns the smallest |distance| among vertices whose
// signed distance to the plane through origin with the given normal is
// negative. ok is false when no vertex is on the negative side.
func MinPenetration(vertices []mgl32.Vec3, origin, normal mgl32.Vec3) (float32, bool) {
	minPen := float32(math.MaxFloat32)
	for _, v := range vertices {
		dist := v.Sub(origin).Dot(normal)
		if dist < 0 && -dist < minPen {
			minPen = -dist
		}
	}
	if minPen == math.MaxFloat32 {
		return 0, false
	}
	return minPen, true
}
