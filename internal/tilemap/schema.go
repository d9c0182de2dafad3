// Package tilemap holds the tile grid: map geometry, ordered layers of placed
// tiles, solidity queries used by collision, and visible-tile queries used by
// the renderer. A Grid is immutable after construction.
package tilemap

// TileData is one placed tile in the map read schema.
type TileData struct {
	ID int `json:"id" yaml:"id"`
	X  int `json:"x" yaml:"x"`
	Y  int `json:"y" yaml:"y"`
}

// LayerData is one layer in the map read schema.
type LayerData struct {
	Name     string     `json:"name" yaml:"name"`
	Collider bool       `json:"collider" yaml:"collider"`
	Tiles    []TileData `json:"tiles" yaml:"tiles"`
}

// MapData is the parsed map as produced by a loader.
// TileSize is a pointer so a missing field can be told apart from zero.
type MapData struct {
	MapWidth  int         `json:"mapWidth" yaml:"map_width"`
	MapHeight int         `json:"mapHeight" yaml:"map_height"`
	TileSize  *int        `json:"tileSize" yaml:"tile_size"`
	Layers    []LayerData `json:"layers" yaml:"layers"`
}

// IntPtr is a helper for building MapData literals.
func IntPtr(v int) *int {
	return &v
}
