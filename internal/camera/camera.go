// Package camera owns the viewport: a rectangle positioned in world space that
// follows a target, is clamped to the map, and converts between world and
// screen coordinates.
package camera

import (
	"math"

	"github.com/vovakirdan/tilewalk/internal/core"
)

// Camera is the viewport in world pixels. X and Y are the top-left corner
// and may be fractional. Width and Height are fixed at construction.
type Camera struct {
	X, Y      float64
	Width     float64
	Height    float64
	MapBounds core.Size
}

// New creates a camera at the world origin.
func New(width, height float64, mapBounds core.Size) *Camera {
	return &Camera{
		Width:     width,
		Height:    height,
		MapBounds: mapBounds,
	}
}

// Follow centers the viewport on the target's bounding-box center, then clamps
// each axis into [0, mapBounds - viewport]. When the map is smaller than the
// viewport the upper bound is negative and the axis clamps to 0.
func (c *Camera) Follow(target core.Box) {
	x := target.X - c.Width/2 + target.W/2
	y := target.Y - c.Height/2 + target.H/2

	c.X = core.ClampF(x, 0, c.MapBounds.W-c.Width)
	c.Y = core.ClampF(y, 0, c.MapBounds.H-c.Height)
}

// VisibleArea returns the inclusive tile range overlapping the viewport.
// The end bounds use ceil, so partially visible edge tiles are kept at the
// cost of up to one tile of overscan per edge.
func (c *Camera) VisibleArea(tileSize int) core.TileRange {
	ts := float64(tileSize)
	return core.TileRange{
		StartCol: int(math.Floor(c.X / ts)),
		EndCol:   int(math.Ceil((c.X + c.Width) / ts)),
		StartRow: int(math.Floor(c.Y / ts)),
		EndRow:   int(math.Ceil((c.Y + c.Height) / ts)),
	}
}

// Translation is the offset the renderer applies to the drawing surface.
// WorldToScreen is exactly p + Translation().
func (c *Camera) Translation() core.Vec {
	return core.Vec{X: -c.X, Y: -c.Y}
}

// WorldToScreen converts a world position to screen space.
func (c *Camera) WorldToScreen(wx, wy float64) core.Vec {
	t := c.Translation()
	return core.Vec{X: wx + t.X, Y: wy + t.Y}
}

// ScreenToWorld converts a screen position to world space.
func (c *Camera) ScreenToWorld(sx, sy float64) core.Vec {
	t := c.Translation()
	return core.Vec{X: sx - t.X, Y: sy - t.Y}
}

// Viewport returns the viewport as a world-space box.
func (c *Camera) Viewport() core.Box {
	return core.Box{X: c.X, Y: c.Y, W: c.Width, H: c.Height}
}
