// Package collision tests the cube against the plane registry.
//
// The test is a reduced separating-axis check: only the plane normal and the
// cube's three face axes are tried, with no edge cross-product axes. A
// containment refinement (the vertex must project inside the quad and lie
// within the contact threshold of it) filters what the axis test admits.
package collision

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubefield/internal/scene"
	"github.com/Faultbox/cubefield/pkg/geom"
)

// NoPlane is the plane index reported when nothing is touched.
const NoPlane = -1

// DefaultThreshold is half the cube's side length.
const DefaultThreshold = scene.CubeHalfExtent

// Contact is the result of a collision query.
type Contact struct {
	Colliding  bool
	PlaneIndex int
	Normal     mgl32.Vec3
}

// None returns the no-collision result.
func None() Contact {
	return Contact{PlaneIndex: NoPlane}
}

// Detector runs cube-vs-plane queries.
type Detector struct {
	// Threshold is the largest perpendicular distance at which a cube
	// vertex still counts as touching a plane.
	Threshold float32
}

// NewDetector creates a detector. Non-positive thresholds fall back to
// DefaultThreshold.
func NewDetector(threshold float32) *Detector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Detector{Threshold: threshold}
}

// Detect returns the first plane, in registry order, that the cube with the
// given model matrix touches.
func (d *Detector) Detect(model mgl32.Mat4, planes *scene.Registry) Contact {
	cube := scene.CubeWorldVertices(model)
	axes := CubeAxes(model)

	for i := 0; i < planes.Len(); i++ {
		p := planes.At(i)
		if d.touches(cube, axes, p) {
			return Contact{Colliding: true, PlaneIndex: i, Normal: p.Normal()}
		}
	}
	return None()
}

// DetectPlane tests a single plane.
func (d *Detector) DetectPlane(model mgl32.Mat4, p scene.Plane) bool {
	return d.touches(scene.CubeWorldVertices(model), CubeAxes(model), p)
}

func (d *Detector) touches(cube []mgl32.Vec3, cubeAxes [3]mgl32.Vec3, p scene.Plane) bool {
	quad := p.WorldVertices()
	normal := p.Normal()

	if SeparatedOnAxes(cube, quad[:], TestAxes(normal, cubeAxes)) {
		return false
	}
	return d.Refine(cube, quad, normal)
}

// CubeAxes returns the cube's face normals: the canonical axes transformed
// by the upper 3x3 of model and normalized.
func CubeAxes(model mgl32.Mat4) [3]mgl32.Vec3 {
	m3 := model.Mat3()
	return [3]mgl32.Vec3{
		geom.SafeNormalize(m3.Mul3x1(mgl32.Vec3{1, 0, 0})),
		geom.SafeNormalize(m3.Mul3x1(mgl32.Vec3{0, 1, 0})),
		geom.SafeNormalize(m3.Mul3x1(mgl32.Vec3{0, 0, 1})),
	}
}

// TestAxes lists the four candidate separating axes.
func TestAxes(planeNormal mgl32.Vec3, cubeAxes [3]mgl32.Vec3) [4]mgl32.Vec3 {
	return [4]mgl32.Vec3{planeNormal, cubeAxes[0], cubeAxes[1], cubeAxes[2]}
}

// SeparatedOnAxes reports whether the projections of a and b are disjoint
// on any of the axes. It stops at the first separating axis.
func SeparatedOnAxes(a, b []mgl32.Vec3, axes [4]mgl32.Vec3) bool {
	for _, axis := range axes {
		if !geom.Project(a, axis).Overlaps(geom.Project(b, axis)) {
			return true
		}
	}
	return false
}

// Refine reports whether any cube vertex projects inside the quad footprint
// (u, v in [0, 1] along the edges leaving vertex 0 towards vertices 1 and 3)
// and lies within the threshold of the plane.
func (d *Detector) Refine(cube []mgl32.Vec3, quad [4]mgl32.Vec3, normal mgl32.Vec3) bool {
	e1 := quad[1].Sub(quad[0])
	e2 := quad[3].Sub(quad[0])
	l1, l2 := e1.Dot(e1), e2.Dot(e2)
	if l1 == 0 || l2 == 0 {
		return false
	}

	for _, v := range cube {
		rel := v.Sub(quad[0])
		u := rel.Dot(e1) / l1
		w := rel.Dot(e2) / l2
		if u < 0 || u > 1 || w < 0 || w > 1 {
			continue
		}
		if mgl32.Abs(rel.Dot(normal)) <= d.Threshold {
			return true
		}
	}
	return false
}
