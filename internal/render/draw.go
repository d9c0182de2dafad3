package render

import (
	"math"

	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/tilemap"
	"github.com/vovakirdan/tilewalk/internal/tileset"
	"github.com/vovakirdan/tilewalk/internal/world"
)

// Style holds the colors the renderer uses outside the tileset.
type Style struct {
	Background core.RGB
	Player     core.RGB
	Cab        core.RGB // Front of the player, on the facing side
	Light      core.RGB // Roof light, flashes while moving
}

// DefaultStyle returns the fire truck palette.
func DefaultStyle(bg core.RGB) Style {
	return Style{
		Background: bg,
		Player:     core.RGB{R: 210, G: 30, B: 30},
		Cab:        core.RGB{R: 240, G: 240, B: 240},
		Light:      core.RGB{R: 60, G: 140, B: 255},
	}
}

// Stats reports what DrawFrame did.
type Stats struct {
	TilesDrawn     int
	TilesetMissing bool
}

// DrawFrame clears the canvas and draws the frame's visible tiles and then
// the player, translated from world to viewport space by the camera offset.
// A nil or unready tileset skips the tiles for this frame; the player is
// still drawn.
func DrawFrame(c *Canvas, f world.Frame, ts *tileset.Tileset, st Style) Stats {
	c.Clear(st.Background)

	var stats Stats
	if !ts.Ready() {
		stats.TilesetMissing = true
	} else {
		for _, p := range f.Tiles {
			if drawTile(c, f, p, ts) {
				stats.TilesDrawn++
			}
		}
	}

	drawPlayer(c, f, st)
	return stats
}

// screenPoint maps a world point to the canvas pixel grid.
func screenPoint(f world.Frame, x, y float64) (int, int) {
	p := f.ToScreen(core.Vec{X: x, Y: y})
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

func drawTile(c *Canvas, f world.Frame, p tilemap.Placement, ts *tileset.Tileset) bool {
	src, ok := tilemap.SourceRect(p.Tile.ID, f.TileSize, ts.Width())
	if !ok {
		return false
	}
	dx, dy := screenPoint(f, float64(p.Dest.X), float64(p.Dest.Y))
	for y := 0; y < p.Dest.H; y++ {
		for x := 0; x < p.Dest.W; x++ {
			if rgb, ok := ts.Pixel(src.X+x, src.Y+y); ok {
				c.Set(dx+x, dy+y, rgb)
			}
		}
	}
	return true
}

func drawPlayer(c *Canvas, f world.Frame, st Style) {
	x, y := screenPoint(f, f.Player.X, f.Player.Y)
	w, h := int(f.Player.W), int(f.Player.H)
	c.FillRect(core.NewRect(x, y, w, h), st.Player)

	// Cab on the facing side, a quarter of the body wide
	cab := max(w/4, 1)
	cx := x + w - cab
	if f.Facing == world.FacingLeft {
		cx = x
	}
	c.FillRect(core.NewRect(cx, y, cab, max(h/2, 1)), st.Cab)

	if f.State.Moving && (f.State.Tick/15)%2 == 0 {
		c.Set(x+w/2, y, st.Light)
	}
}
