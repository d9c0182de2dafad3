package tilemap

import (
	"math"

	"github.com/vovakirdan/tilewalk/internal/core"
)

// Tile is a single placed tile: a tileset index at grid coordinates.
type Tile struct {
	ID int
	X  int
	Y  int
}

// Layer is an ordered collection of tiles sharing a collision classification.
type Layer struct {
	Name     string
	Collider bool
	Tiles    []Tile
}

// Coord addresses a tile cell.
type Coord struct {
	X, Y int
}

// Grid owns map geometry and answers solidity and visibility queries.
// Layers are kept in render order, back to front.
type Grid struct {
	tileSize int
	width    int
	height   int
	layers   []Layer

	// solid holds every cell occupied by a collider-layer tile.
	solid map[Coord]struct{}
}

// New validates map data and builds an immutable grid.
// Tiles outside [0, width) x [0, height) are accepted; they are never
// rendered and only affect solidity at their own coordinates.
func New(data MapData) (*Grid, error) {
	if data.TileSize == nil {
		return nil, invalid(CodeMissingTileSize, "tileSize is required")
	}
	if *data.TileSize <= 0 {
		return nil, invalid(CodeBadTileSize, "tileSize must be positive, got %d", *data.TileSize)
	}
	if data.MapWidth < 0 || data.MapHeight < 0 {
		return nil, invalid(CodeNegativeDimension, "map dimensions must be non-negative, got %dx%d",
			data.MapWidth, data.MapHeight)
	}

	g := &Grid{
		tileSize: *data.TileSize,
		width:    data.MapWidth,
		height:   data.MapHeight,
		layers:   make([]Layer, 0, len(data.Layers)),
		solid:    make(map[Coord]struct{}),
	}

	for li, ld := range data.Layers {
		layer := Layer{
			Name:     ld.Name,
			Collider: ld.Collider,
			Tiles:    make([]Tile, 0, len(ld.Tiles)),
		}
		for ti, td := range ld.Tiles {
			if td.ID < 0 {
				return nil, invalid(CodeBadTileID, "layer %d (%q) tile %d has negative id %d",
					li, ld.Name, ti, td.ID)
			}
			layer.Tiles = append(layer.Tiles, Tile{ID: td.ID, X: td.X, Y: td.Y})
			if ld.Collider {
				g.solid[Coord{X: td.X, Y: td.Y}] = struct{}{}
			}
		}
		g.layers = append(g.layers, layer)
	}

	return g, nil
}

// TileSize returns the tile edge length in pixels.
func (g *Grid) TileSize() int {
	return g.tileSize
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in tiles.
func (g *Grid) Height() int {
	return g.height
}

// PixelSize returns the map extent in world pixels.
func (g *Grid) PixelSize() core.Size {
	return core.Size{
		W: float64(g.width * g.tileSize),
		H: float64(g.height * g.tileSize),
	}
}

// InBounds returns true if the tile coordinate is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Layers returns a copy of the layers in render order.
func (g *Grid) Layers() []Layer {
	out := make([]Layer, len(g.layers))
	for i, l := range g.layers {
		out[i] = Layer{
			Name:     l.Name,
			Collider: l.Collider,
			Tiles:    append([]Tile(nil), l.Tiles...),
		}
	}
	return out
}

// TileAt converts a pixel position to the tile coordinate containing it.
func (g *Grid) TileAt(px, py float64) Coord {
	ts := float64(g.tileSize)
	return Coord{
		X: int(math.Floor(px / ts)),
		Y: int(math.Floor(py / ts)),
	}
}

// IsSolid reports whether the pixel position lies in a tile of any collider layer.
// Decorative layers never block. Positions outside the map match nothing.
func (g *Grid) IsSolid(px, py float64) bool {
	_, ok := g.solid[g.TileAt(px, py)]
	return ok
}

// IsSolidTile reports whether a collider layer has a tile at (x, y).
func (g *Grid) IsSolidTile(x, y int) bool {
	_, ok := g.solid[Coord{X: x, Y: y}]
	return ok
}
