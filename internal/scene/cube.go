package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubefield/pkg/geom"
)

// CubeHalfExtent is half the cube's side length.
const CubeHalfExtent = 0.5

// CubeVertices is the local unit cube shared by every cube instance.
var CubeVertices = [8]geom.Vertex{
	{Pos: mgl32.Vec3{-0.5, -0.5, 0.5}, Color: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{1, 0}},  // front bottom-left
	{Pos: mgl32.Vec3{0.5, -0.5, 0.5}, Color: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{0, 0}},   // front bottom-right
	{Pos: mgl32.Vec3{0.5, 0.5, 0.5}, Color: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 1}},    // front top-right
	{Pos: mgl32.Vec3{-0.5, 0.5, 0.5}, Color: mgl32.Vec3{1, 0, 1}, UV: mgl32.Vec2{1, 1}},   // front top-left
	{Pos: mgl32.Vec3{-0.5, -0.5, -0.5}, Color: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{1, 1}}, // back bottom-left
	{Pos: mgl32.Vec3{0.5, -0.5, -0.5}, Color: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{0, 1}},  // back bottom-right
	{Pos: mgl32.Vec3{0.5, 0.5, -0.5}, Color: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 0}},   // back top-right
	{Pos: mgl32.Vec3{-0.5, 0.5, -0.5}, Color: mgl32.Vec3{1, 0, 1}, UV: mgl32.Vec2{1, 0}},  // back top-left
}

// CubeIndices lists the 12 cube triangles.
var CubeIndices = [36]uint32{
	0, 1, 2, 2, 3, 0, 1, 5, 6, 6, 2, 1,
	5, 4, 7, 7, 6, 5, 4, 0, 3, 3, 7, 4,
	3, 2, 6, 6, 7, 3, 0, 4, 5, 5, 1, 0,
}

// CubeCorners returns the local cube corner positions.
func CubeCorners() []mgl32.Vec3 {
	return geom.Positions(CubeVertices[:])
}

// CubeWorldVertices transforms the cube corners by model.
func CubeWorldVertices(model mgl32.Mat4) []mgl32.Vec3 {
	return geom.TransformPoints(model, CubeCorners())
}
