// Package picking maps between screen space and the world: projecting
// meshes to pixels for cursor hit tests and casting cursor rays.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubefield/pkg/geom"
)

// ProjectToScreen maps a local-space point through mvp to pixel coordinates
// with the origin at the top-left. ok is false when the point is behind the
// camera (w <= 0).
func ProjectToScreen(mvp mgl32.Mat4, p mgl32.Vec3, width, height int) (mgl32.Vec2, bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return mgl32.Vec2{}, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	return mgl32.Vec2{
		(ndcX + 1) * float32(width) * 0.5,
		(1 - ndcY) * float32(height) * 0.5,
	}, true
}

// PointInTriangle reports whether p lies inside or on triangle abc,
// regardless of winding.
func PointInTriangle(p, a, b, c mgl32.Vec2) bool {
	sign := func(p1, p2, p3 mgl32.Vec2) float32 {
		return (p1[0]-p3[0])*(p2[1]-p3[1]) - (p2[0]-p3[0])*(p1[1]-p3[1])
	}
	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// PointInMesh reports whether the screen point lies over any triangle of the
// projected mesh. Triangles with a vertex behind the camera are skipped.
func PointInMesh(point mgl32.Vec2, mvp mgl32.Mat4, width, height int, verts []mgl32.Vec3, indices []uint32) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	screen := make([]mgl32.Vec2, len(verts))
	visible := make([]bool, len(verts))
	for i, v := range verts {
		screen[i], visible[i] = ProjectToScreen(mvp, v, width, height)
	}

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if !visible[a] || !visible[b] || !visible[c] {
			continue
		}
		if PointInTriangle(point, screen[a], screen[b], screen[c]) {
			return true
		}
	}
	return false
}

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// ScreenToRay converts pixel coordinates to a world-space ray using the
// inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY float32, width, height int, invViewProj mgl32.Mat4) Ray {
	ndcX := 2*screenX/float32(width) - 1
	ndcY := 1 - 2*screenY/float32(height)

	near := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, 1, 1})

	return Ray{Origin: near, Direction: geom.SafeNormalize(far.Sub(near))}
}

func unproject(inv mgl32.Mat4, ndc mgl32.Vec4) mgl32.Vec3 {
	w := inv.Mul4x1(ndc)
	if w[3] != 0 {
		return w.Vec3().Mul(1 / w[3])
	}
	return w.Vec3()
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
func (r Ray) IntersectPlaneY(planeY float32) (mgl32.Vec3, bool) {
	if gomath.Abs(float64(r.Direction[1])) < 0.001 {
		return mgl32.Vec3{}, false
	}
	t := (planeY - r.Origin[1]) / r.Direction[1]
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return r.Origin.Add(r.Direction.Mul(t)), true
}

// IntersectBounds runs a slab test against b. It returns the entry distance,
// or the exit distance when the ray starts inside.
func (r Ray) IntersectBounds(b geom.Bounds) (float32, bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] == 0 {
			if r.Origin[axis] < b.Min[axis] || r.Origin[axis] > b.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (b.Min[axis] - r.Origin[axis]) / r.Direction[axis]
		t2 := (b.Max[axis] - r.Origin[axis]) / r.Direction[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
