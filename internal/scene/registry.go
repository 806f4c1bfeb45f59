package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubefield/pkg/geom"
)

// Registry is an ordered, read-only collection of planes. Bounds are
// computed once at construction.
type Registry struct {
	planes []Plane
	bounds geom.Bounds
}

// NewRegistry copies planes into a new registry.
func NewRegistry(planes ...Plane) *Registry {
	r := &Registry{
		planes: append([]Plane(nil), planes...),
		bounds: geom.EmptyBounds(),
	}
	for _, p := range r.planes {
		for _, v := range p.WorldVertices() {
			r.bounds = r.bounds.Extend(v)
		}
	}
	return r
}

// Len returns the number of planes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.planes)
}

// At returns the plane at index i.
func (r *Registry) At(i int) Plane {
	return r.planes[i]
}

// All returns a copy of the planes in registry order.
func (r *Registry) All() []Plane {
	return append([]Plane(nil), r.planes...)
}

// Bounds returns the union of every plane's world vertices.
func (r *Registry) Bounds() geom.Bounds {
	return r.bounds
}

// GroundConfig describes a square tiling of ground planes.
type GroundConfig struct {
	TileSize float32
	Spacing  float32
	Rings    int
	PlaneY   float32
}

// DefaultGroundConfig is a 3x3 tiling of 12-unit tiles at y=-1.
func DefaultGroundConfig() GroundConfig {
	return GroundConfig{
		TileSize: 12,
		Spacing:  12,
		Rings:    1,
		PlaneY:   -1,
	}
}

// TiledGround builds the center tile followed by each ring of neighbors.
// Ring n holds the 8n tiles at Chebyshev distance n from the center.
func TiledGround(cfg GroundConfig) *Registry {
	planes := []Plane{tile(cfg, 0, 0)}
	for ring := 1; ring <= cfg.Rings; ring++ {
		for _, c := range ringCells(ring) {
			planes = append(planes, tile(cfg, c[0], c[1]))
		}
	}
	return NewRegistry(planes...)
}

func tile(cfg GroundConfig, ix, iz int) Plane {
	pos := mgl32.Vec3{float32(ix) * cfg.Spacing, cfg.PlaneY, float32(iz) * cfg.Spacing}
	return NewPlane(cfg.TileSize, cfg.TileSize, pos, mgl32.Vec3{})
}

// ringCells walks the ring clockwise starting straight behind the center
// (+Z), matching the order back, back-right, right, front-right and so on.
func ringCells(n int) [][2]int {
	cells := make([][2]int, 0, 8*n)
	// top edge, left to right from x=0
	for x := 0; x < n; x++ {
		cells = append(cells, [2]int{x, n})
	}
	// right edge, top to bottom
	for z := n; z > -n; z-- {
		cells = append(cells, [2]int{n, z})
	}
	// bottom edge, right to left
	for x := n; x > -n; x-- {
		cells = append(cells, [2]int{x, -n})
	}
	// left edge, bottom to top
	for z := -n; z < n; z++ {
		cells = append(cells, [2]int{-n, z})
	}
	// top edge, left back to x=0
	for x := -n; x < 0; x++ {
		cells = append(cells, [2]int{x, n})
	}
	return cells
}
