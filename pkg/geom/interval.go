package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Interval is a closed range of projections onto an axis.
type Interval struct {
	Min, Max float32
}

// Project projects every point onto axis and returns the covered interval.
func Project(points []mgl32.Vec3, axis mgl32.Vec3) Interval {
	iv := Interval{Min: math.MaxFloat32, Max: -math.MaxFloat32}
	for _, p := range points {
		d := p.Dot(axis)
		if d < iv.Min {
			iv.Min = d
		}
		if d > iv.Max {
			iv.Max = d
		}
	}
	return iv
}

// Overlaps reports whether the two intervals share at least one point.
func (iv Interval) Overlaps(other Interval) bool {
	return !(iv.Max < other.Min || other.Max < iv.Min)
}

// Length returns Max - Min.
func (iv Interval) Length() float32 {
	return iv.Max - iv.Min
}
