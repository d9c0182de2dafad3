package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilewalk/internal/maps"
	"github.com/vovakirdan/tilewalk/internal/tileset"
)

// Catalog is the set of maps a front-end offers, with their tilesets
// decoded once up front.
type Catalog struct {
	maps     []maps.Map
	tilesets map[string]*tileset.Tileset
}

// NewCatalog resolves the tileset of every map in list. A tileset that
// fails to load is logged and left nil; the map still plays, without tiles.
func NewCatalog(list []maps.Map, logger *log.Logger) *Catalog {
	c := &Catalog{
		maps:     list,
		tilesets: make(map[string]*tileset.Tileset, len(list)),
	}
	for _, m := range list {
		tileSize := 0
		if m.Data.TileSize != nil {
			tileSize = *m.Data.TileSize
		}
		ts, err := tileset.Resolve(m.Tileset, tileSize)
		if err != nil {
			if logger != nil {
				logger.Warn("tileset not loaded", "map", m.ID, "error", err)
			}
			continue
		}
		c.tilesets[m.ID] = ts
	}
	return c
}

// Maps returns the catalog's maps in order.
func (c *Catalog) Maps() []maps.Map {
	return c.maps
}

// Find returns the map with the given ID.
func (c *Catalog) Find(id string) (maps.Map, bool) {
	for _, m := range c.maps {
		if m.ID == id {
			return m, true
		}
	}
	return maps.Map{}, false
}

// Tileset returns the tileset for a map ID, or nil if it is missing.
func (c *Catalog) Tileset(id string) *tileset.Tileset {
	return c.tilesets[id]
}
