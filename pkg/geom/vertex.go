// Package geom provides small geometry helpers shared by the scene and collision code.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a static mesh vertex: position, color and texture coordinate.
type Vertex struct {
	Pos   mgl32.Vec3
	Color mgl32.Vec3
	UV    mgl32.Vec2
}

// Positions returns the positions of the given vertices.
func Positions(verts []Vertex) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(verts))
	for i, v := range verts {
		out[i] = v.Pos
	}
	return out
}

// TransformPoints transforms local points by m (w=1).
func TransformPoints(m mgl32.Mat4, local []mgl32.Vec3) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(local))
	for i, p := range local {
		out[i] = m.Mul4x1(p.Vec4(1)).Vec3()
	}
	return out
}

// SafeNormalize returns v scaled to unit length, or the zero vector if v has no length.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
