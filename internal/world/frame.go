package world

import (
	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/tilemap"
)

// Frame is everything a renderer needs to draw one tick.
type Frame struct {
	Camera   core.Vec  // Viewport top-left in world pixels
	Viewport core.Size // Viewport size in world pixels
	Area     core.TileRange
	TileSize int
	Tiles    []tilemap.Placement // Back to front

	Player    core.Box // World pixels
	Facing    Facing
	AnimFrame int

	State core.WorldState
	Debug bool
}

// Frame returns the render payload for the current tick.
func (w *World) Frame() Frame {
	return Frame{
		Camera:    core.Vec{X: w.cam.X, Y: w.cam.Y},
		Viewport:  core.Size{W: w.cam.Width, H: w.cam.Height},
		Area:      w.area,
		TileSize:  w.grid.TileSize(),
		Tiles:     w.grid.VisibleTiles(w.area),
		Player:    w.body.Box(),
		Facing:    w.facing,
		AnimFrame: w.animFrame,
		State:     w.State(),
		Debug:     w.debug,
	}
}

// ToScreen converts a world position to viewport coordinates.
func (f Frame) ToScreen(p core.Vec) core.Vec {
	return p.Sub(f.Camera)
}

// Hover describes the world position under a screen-space pointer.
type Hover struct {
	World  core.Vec
	Tile   tilemap.Coord
	Inside bool // Tile lies within the grid
	Solid  bool
}

// ClickToWorld maps a viewport pixel position to the world and the tile
// under it, using the camera's inverse transform.
func (w *World) ClickToWorld(sx, sy float64) Hover {
	p := w.cam.ScreenToWorld(sx, sy)
	tile := w.grid.TileAt(p.X, p.Y)
	return Hover{
		World:  p,
		Tile:   tile,
		Inside: w.grid.InBounds(tile.X, tile.Y),
		Solid:  w.grid.IsSolid(p.X, p.Y),
	}
}
