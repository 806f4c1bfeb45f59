// Package scene holds the static geometry the simulation runs over: the
// ground plane registry and the shared cube mesh.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubefield/pkg/geom"
)

var planeColor = mgl32.Vec3{0.5, 0.5, 0.5}

// Plane is a static quad. Vertices are in local space, centered at the
// origin; Position places the quad in the world.
type Plane struct {
	Vertices [4]geom.Vertex
	Position mgl32.Vec3
}

// GeneratePlaneVertices builds a width x depth quad in the XZ plane rotated
// by rotationDeg (applied X, then Y, then Z).
//
// Corners are ordered bottom-left, bottom-right, top-right, top-left. Seen
// from above this winds clockwise, so the face normal of an unrotated quad
// points down (-Y).
func GeneratePlaneVertices(width, depth float32, rotationDeg mgl32.Vec3) [4]geom.Vertex {
	hw, hd := width/2, depth/2

	rot := mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg[0])).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg[1]))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg[2])))

	corners := [4]mgl32.Vec3{
		{-hw, 0, -hd},
		{hw, 0, -hd},
		{hw, 0, hd},
		{-hw, 0, hd},
	}
	uvs := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var out [4]geom.Vertex
	for i, c := range corners {
		out[i] = geom.Vertex{
			Pos:   rot.Mul4x1(c.Vec4(1)).Vec3(),
			Color: planeColor,
			UV:    uvs[i],
		}
	}
	return out
}

// NewPlane creates a quad of the given size centered at position.
func NewPlane(width, depth float32, position, rotationDeg mgl32.Vec3) Plane {
	return Plane{
		Vertices: GeneratePlaneVertices(width, depth, rotationDeg),
		Position: position,
	}
}

// Model returns the plane's translation-only model matrix.
func (p Plane) Model() mgl32.Mat4 {
	return mgl32.Translate3D(p.Position[0], p.Position[1], p.Position[2])
}

// WorldVertices returns the four corners in world space.
func (p Plane) WorldVertices() [4]mgl32.Vec3 {
	m := p.Model()
	var out [4]mgl32.Vec3
	for i, v := range p.Vertices {
		out[i] = m.Mul4x1(v.Pos.Vec4(1)).Vec3()
	}
	return out
}

// Normal returns normalize((v1-v0) x (v2-v0)) in world space.
func (p Plane) Normal() mgl32.Vec3 {
	w := p.WorldVertices()
	return geom.SafeNormalize(w[1].Sub(w[0]).Cross(w[2].Sub(w[0])))
}

// Edges returns the two quad edges leaving vertex 0: towards vertex 1 and
// towards vertex 3. For a well-formed quad they are orthogonal and span it.
func (p Plane) Edges() (mgl32.Vec3, mgl32.Vec3) {
	w := p.WorldVertices()
	return w[1].Sub(w[0]), w[3].Sub(w[0])
}

// Height returns the world Y of vertex 0.
func (p Plane) Height() float32 {
	return p.WorldVertices()[0][1]
}
