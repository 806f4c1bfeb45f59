// Package camera provides the free camera and projection used to view the cube.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubefield/pkg/geom"
)

// Pitch limits in degrees. Looking straight up or down flips the view.
const (
	MinPitch = -89.0
	MaxPitch = 89.0
)

// WorldUp is the fixed up vector.
var WorldUp = mgl32.Vec3{0, 1, 0}

// ClampPitch limits pitch to [MinPitch, MaxPitch].
func ClampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, MinPitch, MaxPitch)
}

// Direction returns the unit view direction for pitch and yaw in degrees.
// Yaw 0 looks down +X.
func Direction(pitchDeg, yawDeg float32) mgl32.Vec3 {
	pitch := float64(mgl32.DegToRad(pitchDeg))
	yaw := float64(mgl32.DegToRad(yawDeg))

	return geom.SafeNormalize(mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	})
}

// Right returns the unit vector to the right of dir.
func Right(dir mgl32.Vec3) mgl32.Vec3 {
	return geom.SafeNormalize(dir.Cross(WorldUp))
}

// FreeCamera is a position plus a pitch/yaw orientation.
type FreeCamera struct {
	Position mgl32.Vec3
	Pitch    float32 // degrees
	Yaw      float32 // degrees
}

// NewFreeCamera creates a camera at the default viewing position.
func NewFreeCamera() *FreeCamera {
	return &FreeCamera{
		Position: mgl32.Vec3{0, 5, 10},
	}
}

// Forward returns the view direction.
func (c *FreeCamera) Forward() mgl32.Vec3 {
	return Direction(c.Pitch, c.Yaw)
}

// Right returns the camera's right vector.
func (c *FreeCamera) Right() mgl32.Vec3 {
	return Right(c.Forward())
}

// SetOrientation sets pitch (clamped) and yaw.
func (c *FreeCamera) SetOrientation(pitch, yaw float32) {
	c.Pitch = ClampPitch(pitch)
	c.Yaw = yaw
}

// Move translates the camera along its forward and right vectors.
// forward and right are usually -1, 0 or 1.
func (c *FreeCamera) Move(forward, right, amount float32) {
	f := c.Forward().Mul(forward * amount)
	r := c.Right().Mul(right * amount)
	c.Position = c.Position.Add(f).Add(r)
}

// Attach places the camera eyeHeight above target.
func (c *FreeCamera) Attach(target mgl32.Vec3, eyeHeight float32) {
	c.Position = target.Add(mgl32.Vec3{0, eyeHeight, 0})
}

// LookAhead returns the point one unit in front of the camera.
func (c *FreeCamera) LookAhead() mgl32.Vec3 {
	return c.Position.Add(c.Forward())
}

// ViewMatrix looks from the camera position at target.
func (c *FreeCamera) ViewMatrix(target mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, target, WorldUp)
}

// Projection holds perspective projection parameters.
type Projection struct {
	FovDeg float32
	Near   float32
	Far    float32
}

// DefaultProjection is a 45 degree perspective with a 0.1..100 depth range.
func DefaultProjection() Projection {
	return Projection{FovDeg: 45, Near: 0.1, Far: 100}
}

// Matrix returns the projection matrix for the given aspect ratio. A
// non-positive aspect is treated as square.
func (p Projection) Matrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(p.FovDeg), aspect, p.Near, p.Far)
}
