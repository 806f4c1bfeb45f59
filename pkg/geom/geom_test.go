package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestProjectAndOverlap(t *testing.T) {
	pts := []mgl32.Vec3{{-1, 0, 0}, {2, 5, 0}, {0.5, -3, 0}}

	iv := Project(pts, mgl32.Vec3{1, 0, 0})
	assert.Equal(t, Interval{Min: -1, Max: 2}, iv)
	assert.InDelta(t, 3, iv.Length(), 1e-6)

	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint left", Interval{0, 1}, Interval{2, 3}, false},
		{"disjoint right", Interval{2, 3}, Interval{0, 1}, false},
		{"touching", Interval{0, 1}, Interval{1, 2}, true},
		{"nested", Interval{0, 10}, Interval{2, 3}, true},
		{"partial", Interval{0, 2}, Interval{1, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestBoundsExtendContains(t *testing.T) {
	b := EmptyBounds()
	assert.True(t, b.IsEmpty())

	b = b.Extend(mgl32.Vec3{-2, 0, 3}).Extend(mgl32.Vec3{4, -1, -5})
	assert.False(t, b.IsEmpty())
	assert.Equal(t, mgl32.Vec3{-2, -1, -5}, b.Min)
	assert.Equal(t, mgl32.Vec3{4, 0, 3}, b.Max)

	assert.True(t, b.Contains(mgl32.Vec3{0, -0.5, 0}))
	assert.False(t, b.Contains(mgl32.Vec3{0, 1, 0}))
	assert.True(t, b.ContainsXZ(mgl32.Vec3{0, 100, 0}))
	assert.False(t, b.ContainsXZ(mgl32.Vec3{5, 0, 0}))

	assert.Equal(t, mgl32.Vec3{1, -0.5, -1}, b.Center())
	assert.Equal(t, mgl32.Vec3{6, 1, 8}, b.Size())
}

func TestBoundsShrink(t *testing.T) {
	b := Bounds{Min: mgl32.Vec3{-10, 0, -10}, Max: mgl32.Vec3{10, 0.2, 10}}
	s := b.Shrink(0.5)

	assert.Equal(t, float32(-9.5), s.Min[0])
	assert.Equal(t, float32(9.5), s.Max[2])
	// Y is thinner than twice the margin and collapses to its center.
	assert.InDelta(t, 0.1, s.Min[1], 1e-6)
	assert.InDelta(t, 0.1, s.Max[1], 1e-6)
}

func TestCorners(t *testing.T) {
	b := Bounds{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 2, 3}}
	c := b.Corners()
	assert.Equal(t, b.Min, c[0])
	assert.Equal(t, b.Max, c[6])
	for _, p := range c {
		assert.True(t, b.Contains(p))
	}
}

func TestTransformPoints(t *testing.T) {
	m := mgl32.Translate3D(10, 20, 30)
	out := TransformPoints(m, []mgl32.Vec3{{1, 2, 3}})
	assert.Equal(t, mgl32.Vec3{11, 22, 33}, out[0])

	assert.Equal(t, mgl32.Vec3{}, SafeNormalize(mgl32.Vec3{}))
	assert.InDelta(t, 1, SafeNormalize(mgl32.Vec3{3, 4, 0}).Len(), 1e-6)
}
