package tilemap

import "github.com/vovakirdan/tilewalk/internal/core"

// Placement is one tile selected for drawing.
type Placement struct {
	Layer int    // Index into the render order
	Name  string // Layer name
	Tile  Tile
	Dest  core.Rect // Destination rectangle in world pixels
}

// VisibleTiles returns, layer by layer in render order, every tile whose
// coordinates fall inside the inclusive range. Tiles outside the grid are
// skipped. Each call scans every tile of every layer, O(total tiles).
func (g *Grid) VisibleTiles(r core.TileRange) []Placement {
	var out []Placement
	for li, layer := range g.layers {
		for _, t := range layer.Tiles {
			if !r.Contains(t.X, t.Y) || !g.InBounds(t.X, t.Y) {
				continue
			}
			out = append(out, Placement{
				Layer: li,
				Name:  layer.Name,
				Tile:  t,
				Dest:  g.DestRect(t),
			})
		}
	}
	return out
}

// DestRect returns the world-pixel rectangle a tile occupies.
func (g *Grid) DestRect(t Tile) core.Rect {
	return core.NewRect(t.X*g.tileSize, t.Y*g.tileSize, g.tileSize, g.tileSize)
}

// SourceRect returns the tileset rectangle for a tile id. Tiles are packed
// left to right and wrap by the tileset image width. The second return is
// false when the image width is unknown (tileset not ready).
func (g *Grid) SourceRect(id, imageWidth int) (core.Rect, bool) {
	return SourceRect(id, g.tileSize, imageWidth)
}

// SourceRect is Grid.SourceRect for a known tile size.
func SourceRect(id, tileSize, imageWidth int) (core.Rect, bool) {
	if imageWidth <= 0 || tileSize <= 0 || id < 0 {
		return core.Rect{}, false
	}
	offset := id * tileSize
	sx := offset % imageWidth
	sy := (offset / imageWidth) * tileSize
	return core.NewRect(sx, sy, tileSize, tileSize), true
}
