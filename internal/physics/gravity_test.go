package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cubefield/internal/collision"
	"github.com/Faultbox/cubefield/internal/scene"
)

const step = float32(1.0 / 60.0)

func groundAt(y float32) *scene.Registry {
	return scene.NewRegistry(scene.NewPlane(12, 12, mgl32.Vec3{0, y, 0}, mgl32.Vec3{}))
}

func TestApplyFreeFall(t *testing.T) {
	g := NewGravity()
	d := collision.NewDetector(0.5)

	pos := mgl32.Vec3{0, 10, 0}
	next, c := g.Apply(step, pos, mgl32.Translate3D(pos[0], pos[1], pos[2]), groundAt(-1), d)

	assert.False(t, c.Colliding)
	assert.Equal(t, collision.NoPlane, c.PlaneIndex)
	assert.InDelta(t, 10-9.8*0.01/60, next[1], 1e-6)
	assert.Equal(t, float32(0), next[0])
	assert.Equal(t, float32(0), next[2])
}

func TestApplyOnContact(t *testing.T) {
	g := NewGravity()
	d := collision.NewDetector(0.5)

	// Bottom face flush with the plane at y=-1.
	pos := mgl32.Vec3{0, -0.5, 0}
	next, c := g.Apply(step, pos, mgl32.Translate3D(pos[0], pos[1], pos[2]), groundAt(-1), d)
	require.True(t, c.Colliding)

	// The normal faces -Y, so vertices above the plane are on the negative
	// side; the nearest of them (the top face, 1 unit away) sets the
	// correction, and gravity acts along +Y.
	correction := float32(-1) * 1 * step * 0.01
	lift := float32(9.8) * step * 0.01
	assert.InDelta(t, -0.5+correction+lift, next[1], 1e-6)
}

func TestMinPenetration(t *testing.T) {
	origin := mgl32.Vec3{0, 0, 0}
	up := mgl32.Vec3{0, 1, 0}

	pen, ok := MinPenetration([]mgl32.Vec3{{0, 1, 0}, {0, -0.3, 0}, {0, -0.1, 0}}, origin, up)
	require.True(t, ok)
	assert.InDelta(t, 0.1, pen, 1e-6)

	_, ok = MinPenetration([]mgl32.Vec3{{0, 1, 0}, {0, 0, 0}}, origin, up)
	assert.False(t, ok, "no vertex strictly below the plane")
}

func TestApplySettlesOnGround(t *testing.T) {
	const planeY = -1
	g := NewGravity()
	d := collision.NewDetector(0.5)
	planes := groundAt(planeY)

	pos := mgl32.Vec3{}
	for i := 0; i < 60; i++ {
		pos, _ = g.Apply(step, pos, mgl32.Translate3D(pos[0], pos[1], pos[2]), planes, d)
	}

	rest := float32(planeY + scene.CubeHalfExtent)
	assert.InDelta(t, rest, pos[1], float64(d.Threshold))
	assert.GreaterOrEqual(t, pos[1], float32(planeY-0.5))
}

func TestApplyHoversAtContactBand(t *testing.T) {
	const planeY = -1
	g := NewGravity()
	d := collision.NewDetector(0.5)
	planes := groundAt(planeY)

	pos := mgl32.Vec3{0, -0.4, 0}
	for i := 0; i < 60*30; i++ {
		pos, _ = g.Apply(step, pos, mgl32.Translate3D(pos[0], pos[1], pos[2]), planes, d)
		require.GreaterOrEqual(t, pos[1], float32(planeY-0.5), "step %d", i)
	}
	assert.InDelta(t, planeY+scene.CubeHalfExtent, pos[1], 0.01)
}
