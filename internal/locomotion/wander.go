package locomotion

import (
	gomath "math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubefield/pkg/geom"
)

// WanderConfig tunes autonomous wandering.
type WanderConfig struct {
	Interval     float32 // seconds between new target headings
	TurnRate     float32
	BaseSpeed    float32
	MinSpeed     float32
	MaxSpeed     float32
	VisitWeight  float32
	CellSize     float32
	BoundsMargin float32
	Lookahead    float32 // distance probed when checking a new target
}

// DefaultWanderConfig returns the stock wander tuning.
func DefaultWanderConfig() WanderConfig {
	return WanderConfig{
		Interval:     1,
		TurnRate:     2,
		BaseSpeed:    2,
		MinSpeed:     1,
		MaxSpeed:     5,
		VisitWeight:  0.5,
		CellSize:     1,
		BoundsMargin: 0.1,
		Lookahead:    1,
	}
}

// Cell is a grid cell on the XZ plane.
type Cell struct {
	X, Z int
}

// CellOf returns the cell containing p.
func CellOf(p mgl32.Vec3, size float32) Cell {
	if size <= 0 {
		size = 1
	}
	return Cell{
		X: int(gomath.Floor(float64(p[0] / size))),
		Z: int(gomath.Floor(float64(p[2] / size))),
	}
}

// Wander steers the cube towards random headings, slowing down in cells it
// has already visited.
type Wander struct {
	Heading     mgl32.Vec3
	Target      mgl32.Vec3
	Timer       float32
	Visits      map[Cell]int
	TotalVisits int
}

// NewWander starts wandering along +X.
func NewWander() *Wander {
	return &Wander{
		Heading: mgl32.Vec3{1, 0, 0},
		Target:  mgl32.Vec3{1, 0, 0},
		Visits:  make(map[Cell]int),
	}
}

// Speed returns the wander speed for a cell visited visits times.
func (cfg WanderConfig) Speed(visits int) float32 {
	return mgl32.Clamp(cfg.BaseSpeed/(1+float32(visits)*cfg.VisitWeight), cfg.MinSpeed, cfg.MaxSpeed)
}

// Step advances one wander step from pos and returns the new position.
// retarget is true when a new target heading was picked.
func (w *Wander) Step(pos mgl32.Vec3, dt float32, bounds geom.Bounds, cfg WanderConfig, rng *rand.Rand, speedFactor float32) (next mgl32.Vec3, retarget bool) {
	if w.Visits == nil {
		w.Visits = make(map[Cell]int)
	}

	w.Timer += dt
	if w.Timer >= cfg.Interval {
		angle := float64(mgl32.DegToRad(rng.Float32() * 360))
		w.Target = mgl32.Vec3{float32(gomath.Cos(angle)), 0, float32(gomath.Sin(angle))}

		probe := pos.Add(w.Target.Mul(cfg.Lookahead))
		w.Target = reflectOutside(w.Target, probe, bounds)
		w.Timer = 0
		retarget = true
	}

	t := min(1, cfg.TurnRate*dt)
	mixed := w.Heading.Mul(1 - t).Add(w.Target.Mul(t))
	if mixed.Len() < 1e-6 {
		w.Heading = w.Target
	} else {
		w.Heading = mixed.Normalize()
	}

	cell := CellOf(pos, cfg.CellSize)
	speed := cfg.Speed(w.Visits[cell]) * speedFactor
	w.Visits[cell]++
	w.TotalVisits++

	next = pos.Add(w.Heading.Mul(speed * dt))

	inner := bounds.Shrink(cfg.BoundsMargin)
	for _, axis := range [2]int{0, 2} {
		switch {
		case next[axis] < inner.Min[axis]:
			next[axis] = inner.Min[axis]
		case next[axis] > inner.Max[axis]:
			next[axis] = inner.Max[axis]
		default:
			continue
		}
		w.Heading[axis] = -w.Heading[axis]
		w.Target[axis] = -w.Target[axis]
	}
	return next, retarget
}

// reflectOutside flips dir on every horizontal axis where p lies outside b.
func reflectOutside(dir, p mgl32.Vec3, b geom.Bounds) mgl32.Vec3 {
	for _, axis := range [2]int{0, 2} {
		if p[axis] < b.Min[axis] || p[axis] > b.Max[axis] {
			dir[axis] = -dir[axis]
		}
	}
	return dir
}
