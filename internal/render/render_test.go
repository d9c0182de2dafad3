package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/tilemap"
	"github.com/vovakirdan/tilewalk/internal/tileset"
	"github.com/vovakirdan/tilewalk/internal/world"
)

var (
	red   = core.RGB{R: 255}
	green = core.RGB{G: 255}
	blue  = core.RGB{B: 255}
	bg    = core.RGB{R: 1, G: 2, B: 3}
)

// stripTileset builds a 2-tile, 4px tileset: id 0 solid red, id 1 solid green.
func stripTileset() *tileset.Tileset {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			c := color.NRGBA{R: 255, A: 255}
			if x >= 4 {
				c = color.NRGBA{G: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return tileset.FromImage(img)
}

func placement(id, x, y, ts int) tilemap.Placement {
	return tilemap.Placement{
		Tile: tilemap.Tile{ID: id, X: x, Y: y},
		Dest: core.NewRect(x*ts, y*ts, ts, ts),
	}
}

func testStyle() Style {
	return Style{Background: bg, Player: blue, Cab: blue, Light: blue}
}

func TestCanvasClipping(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(bg)

	c.Set(-1, 0, red)
	c.Set(4, 0, red)
	c.Set(0, 4, red)
	c.FillRect(core.NewRect(-2, -2, 4, 4), green)

	if c.At(1, 1) != green || c.At(2, 2) != bg {
		t.Errorf("FillRect clipped incorrectly: (1,1)=%v (2,2)=%v", c.At(1, 1), c.At(2, 2))
	}
	if c.At(-1, 0) != core.ColorBlack {
		t.Error("out of bounds read should be black")
	}
}

func TestNewCanvasNegativeSize(t *testing.T) {
	c := NewCanvas(-3, 2)
	if c.Width() != 0 || c.Height() != 2 {
		t.Errorf("size = %dx%d", c.Width(), c.Height())
	}
	c.Set(0, 0, red) // must not panic
}

func TestDrawFrameTranslatesByCamera(t *testing.T) {
	c := NewCanvas(8, 8)
	f := world.Frame{
		Camera:   core.Vec{X: 4, Y: 0},
		TileSize: 4,
		Tiles: []tilemap.Placement{
			placement(0, 1, 0, 4), // world x [4,8) -> screen [0,4)
			placement(1, 2, 0, 4), // world x [8,12) -> screen [4,8)
		},
		Player: core.Box{X: 100, Y: 100, W: 2, H: 2},
	}

	stats := DrawFrame(c, f, stripTileset(), testStyle())
	if stats.TilesDrawn != 2 || stats.TilesetMissing {
		t.Errorf("stats = %+v", stats)
	}
	if c.At(0, 0) != red || c.At(3, 3) != red {
		t.Errorf("tile 0 not at screen x 0..3")
	}
	if c.At(4, 0) != green || c.At(7, 3) != green {
		t.Errorf("tile 1 not at screen x 4..7")
	}
	if c.At(0, 4) != bg {
		t.Errorf("row below tiles should be background, got %v", c.At(0, 4))
	}
}

func TestDrawFrameFractionalCamera(t *testing.T) {
	c := NewCanvas(8, 4)
	f := world.Frame{
		Camera:   core.Vec{X: 0.5},
		TileSize: 4,
		Tiles:    []tilemap.Placement{placement(0, 1, 0, 4)},
		Player:   core.Box{X: 100, Y: 100, W: 1, H: 1},
	}
	DrawFrame(c, f, stripTileset(), testStyle())

	// World x 4 minus 0.5 floors to screen x 3
	if c.At(3, 0) != red || c.At(7, 0) != bg {
		t.Errorf("fractional translation: (3,0)=%v (7,0)=%v", c.At(3, 0), c.At(7, 0))
	}
}

func TestDrawFrameSourceWraps(t *testing.T) {
	// 8px wide image, 4px tiles: id 2 wraps to the second row at (0, 4)
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 4; y < 8; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	c := NewCanvas(4, 4)
	f := world.Frame{
		TileSize: 4,
		Tiles:    []tilemap.Placement{placement(2, 0, 0, 4)},
		Player:   core.Box{X: 100, Y: 100, W: 1, H: 1},
	}
	DrawFrame(c, f, tileset.FromImage(img), Style{Background: bg})

	if c.At(0, 0) != blue {
		t.Errorf("wrapped source pixel = %v, expected blue", c.At(0, 0))
	}
}

func TestDrawFrameMissingTileset(t *testing.T) {
	c := NewCanvas(8, 8)
	f := world.Frame{
		TileSize: 4,
		Tiles:    []tilemap.Placement{placement(0, 0, 0, 4)},
		Player:   core.Box{X: 2, Y: 2, W: 4, H: 4},
	}

	stats := DrawFrame(c, f, nil, testStyle())
	if !stats.TilesetMissing || stats.TilesDrawn != 0 {
		t.Errorf("stats = %+v, expected missing tileset", stats)
	}
	if c.At(0, 0) != bg {
		t.Error("tiles drawn without a tileset")
	}
	if c.At(3, 3) != blue {
		t.Error("player should still be drawn")
	}
}

func TestDrawFrameLayerOrder(t *testing.T) {
	c := NewCanvas(4, 4)
	f := world.Frame{
		TileSize: 4,
		Tiles: []tilemap.Placement{
			placement(0, 0, 0, 4),
			placement(1, 0, 0, 4),
		},
		Player: core.Box{X: 100, Y: 100, W: 1, H: 1},
	}
	DrawFrame(c, f, stripTileset(), testStyle())

	if c.At(2, 2) != green {
		t.Errorf("later layer should be drawn on top, got %v", c.At(2, 2))
	}
}

func TestDrawPlayerFacing(t *testing.T) {
	st := DefaultStyle(bg)
	f := world.Frame{Player: core.Box{X: 0, Y: 0, W: 8, H: 8}, Facing: world.FacingRight}

	c := NewCanvas(8, 8)
	DrawFrame(c, f, nil, st)
	if c.At(7, 0) != st.Cab || c.At(0, 0) != st.Player {
		t.Errorf("right-facing cab misplaced: (7,0)=%v (0,0)=%v", c.At(7, 0), c.At(0, 0))
	}

	f.Facing = world.FacingLeft
	DrawFrame(c, f, nil, st)
	if c.At(0, 0) != st.Cab || c.At(7, 0) != st.Player {
		t.Errorf("left-facing cab misplaced: (0,0)=%v (7,0)=%v", c.At(0, 0), c.At(7, 0))
	}
}

func TestToScreenHalfBlocks(t *testing.T) {
	c := NewCanvas(2, 3)
	c.Clear(bg)
	c.Set(0, 0, red)
	c.Set(0, 1, green)
	c.Set(1, 2, blue)

	scr := core.NewScreen(4, 4)
	c.ToScreen(scr, 1, core.ColorBlack)

	if c.Rows() != 2 {
		t.Errorf("Rows = %d, expected 2", c.Rows())
	}
	cell := scr.GetCell(0, 1)
	if cell.Rune != HalfBlock || cell.Fg != red || cell.Bg != green {
		t.Errorf("cell (0,1) = %+v", cell)
	}
	// Odd last row pairs with the fill color
	cell = scr.GetCell(1, 2)
	if cell.Fg != blue || cell.Bg != core.ColorBlack {
		t.Errorf("cell (1,2) = %+v", cell)
	}
	if scr.GetCell(0, 0).Rune == HalfBlock {
		t.Error("ToScreen wrote above its top row")
	}
}

func TestRenderDefaultWorld(t *testing.T) {
	m := mustDefaultWorld(t)
	f := m.Frame()

	c := NewCanvas(int(f.Viewport.W), int(f.Viewport.H))
	stats := DrawFrame(c, f, tileset.Generated(f.TileSize), DefaultStyle(bg))
	if stats.TilesDrawn != len(f.Tiles) {
		t.Errorf("drew %d of %d tiles", stats.TilesDrawn, len(f.Tiles))
	}
	// The ground layer covers the whole map, so no background shows
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) == bg {
				t.Fatalf("background visible at (%d,%d)", x, y)
			}
		}
	}
}
