package debug

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubefield/internal/locomotion"
)

var (
	coldColor = mgl32.Vec3{0.0, 0.2, 0.6}
	hotColor  = mgl32.Vec3{0.9, 0.1, 0.0}
)

// heatmapLift keeps the overlay just above the ground.
const heatmapLift = 0.01

// VisitHeatmap returns two triangles per visited cell, colored from cold to
// hot by visit count relative to the busiest cell. Cells are emitted in
// (x, z) order so the output is stable.
func VisitHeatmap(visits map[locomotion.Cell]int, cellSize, height float32) []LineVertex {
	if len(visits) == 0 || cellSize <= 0 {
		return nil
	}

	cells := make([]locomotion.Cell, 0, len(visits))
	peak := 0
	for c, n := range visits {
		cells = append(cells, c)
		peak = max(peak, n)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Z < cells[j].Z
	})

	y := height + heatmapLift
	out := make([]LineVertex, 0, len(cells)*6)
	for _, c := range cells {
		t := float32(visits[c]) / float32(peak)
		color := coldColor.Mul(1 - t).Add(hotColor.Mul(t))

		x0 := float32(c.X) * cellSize
		z0 := float32(c.Z) * cellSize
		x1 := x0 + cellSize
		z1 := z0 + cellSize

		out = append(out,
			LineVertex{mgl32.Vec3{x0, y, z0}, color},
			LineVertex{mgl32.Vec3{x1, y, z0}, color},
			LineVertex{mgl32.Vec3{x1, y, z1}, color},

			LineVertex{mgl32.Vec3{x0, y, z0}, color},
			LineVertex{mgl32.Vec3{x1, y, z1}, color},
			LineVertex{mgl32.Vec3{x0, y, z1}, color},
		)
	}
	return out
}
