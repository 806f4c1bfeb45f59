package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubefield/internal/engine/debug"
	"github.com/Faultbox/cubefield/internal/scene"
)

// FrameData is what a renderer needs to draw one frame.
type FrameData struct {
	Model   mgl32.Mat4
	MVP     mgl32.Mat4
	Planes  []scene.Plane
	Overlay []string

	// Lines and Heatmap are set only when debug drawing is enabled.
	Lines   []debug.LineVertex
	Heatmap []debug.LineVertex
}

// Renderer draws frames. Implementations live outside this module.
type Renderer interface {
	Draw(f FrameData)
}

// NopRenderer discards frames.
type NopRenderer struct{}

// Draw does nothing.
func (NopRenderer) Draw(FrameData) {}
