// Package debug builds line and triangle lists for debug drawing: the world
// bounds, the cube's box and the wander visit heatmap.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubefield/pkg/geom"
)

// LineVertex is one endpoint of a debug line or corner of a debug triangle.
type LineVertex struct {
	Pos   mgl32.Vec3
	Color mgl32.Vec3
}

// BoxWireframeVertexCount is the number of vertices of a box wireframe
// (12 edges × 2).
const BoxWireframeVertexCount = 24

// Default colors.
var (
	BoundsColor = mgl32.Vec3{0.2, 0.8, 1.0}
	CubeColor   = mgl32.Vec3{1.0, 1.0, 0.2}
)

// BoxWireframe returns the 12 edges of b as line pairs.
func BoxWireframe(b geom.Bounds, color mgl32.Vec3) []LineVertex {
	lo, hi := b.Min, b.Max
	edges := [12][2]mgl32.Vec3{
		// Bottom face
		{{lo[0], lo[1], lo[2]}, {hi[0], lo[1], lo[2]}},
		{{hi[0], lo[1], lo[2]}, {hi[0], lo[1], hi[2]}},
		{{hi[0], lo[1], hi[2]}, {lo[0], lo[1], hi[2]}},
		{{lo[0], lo[1], hi[2]}, {lo[0], lo[1], lo[2]}},
		// Top face
		{{lo[0], hi[1], lo[2]}, {hi[0], hi[1], lo[2]}},
		{{hi[0], hi[1], lo[2]}, {hi[0], hi[1], hi[2]}},
		{{hi[0], hi[1], hi[2]}, {lo[0], hi[1], hi[2]}},
		{{lo[0], hi[1], hi[2]}, {lo[0], hi[1], lo[2]}},
		// Verticals
		{{lo[0], lo[1], lo[2]}, {lo[0], hi[1], lo[2]}},
		{{hi[0], lo[1], lo[2]}, {hi[0], hi[1], lo[2]}},
		{{hi[0], lo[1], hi[2]}, {hi[0], hi[1], hi[2]}},
		{{lo[0], lo[1], hi[2]}, {lo[0], hi[1], hi[2]}},
	}

	out := make([]LineVertex, 0, BoxWireframeVertexCount)
	for _, e := range edges {
		out = append(out, LineVertex{e[0], color}, LineVertex{e[1], color})
	}
	return out
}

// PointsBounds returns the axis-aligned box around points, grown by padding
// on every side.
func PointsBounds(points []mgl32.Vec3, padding float32) geom.Bounds {
	b := geom.EmptyBounds()
	for _, p := range points {
		b = b.Extend(p)
	}
	if b.IsEmpty() {
		return b
	}
	pad := mgl32.Vec3{padding, padding, padding}
	b.Min = b.Min.Sub(pad)
	b.Max = b.Max.Add(pad)
	return b
}
