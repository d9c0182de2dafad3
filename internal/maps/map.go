// Package maps loads tile maps from disk and provides the built-in maps.
// This package depends on tilemap but tilemap does not depend on maps.
package maps

import (
	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/tilemap"
)

// Map is a complete map definition: the grid read schema plus the metadata
// a front-end needs to start a session on it.
type Map struct {
	ID   string
	Name string
	Data tilemap.MapData

	// Tileset is the tileset image path, resolved against the map file.
	// Empty means the generated palette tileset.
	Tileset string

	// Spawn is the player start in world pixels, if the map defines one.
	Spawn *core.Vec

	FilePath string
	Builtin  bool
}

// Grid validates the map data and builds its tile grid.
func (m Map) Grid() (*tilemap.Grid, error) {
	return tilemap.New(m.Data)
}

// Title returns the display name, falling back to the ID.
func (m Map) Title() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}
