package tilemap

// LayerStats describes a single layer.
type LayerStats struct {
	Name       string
	Collider   bool
	Tiles      int
	OutOfRange int // Tiles with coordinates outside the grid
}

// Stats summarizes a grid for inspection tools.
type Stats struct {
	Width         int
	Height        int
	TileSize      int
	TotalTiles    int
	ColliderTiles int
	SolidCells    int // Distinct cells blocked by collider layers
	OutOfRange    int
	Layers        []LayerStats
}

// Stats computes per-layer and total tile counts.
func (g *Grid) Stats() Stats {
	st := Stats{
		Width:      g.width,
		Height:     g.height,
		TileSize:   g.tileSize,
		SolidCells: len(g.solid),
		Layers:     make([]LayerStats, 0, len(g.layers)),
	}
	for _, l := range g.layers {
		ls := LayerStats{Name: l.Name, Collider: l.Collider, Tiles: len(l.Tiles)}
		for _, t := range l.Tiles {
			if !g.InBounds(t.X, t.Y) {
				ls.OutOfRange++
			}
		}
		st.TotalTiles += ls.Tiles
		st.OutOfRange += ls.OutOfRange
		if l.Collider {
			st.ColliderTiles += ls.Tiles
		}
		st.Layers = append(st.Layers, ls)
	}
	return st
}
