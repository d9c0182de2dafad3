package tileset

import (
	"image"
	"image/color"

	"github.com/vovakirdan/tilewalk/internal/core"
)

// Tile ids of the generated tileset, in image order.
const (
	TileGrass = iota
	TilePath
	TileBrick
	TileRoof
	TileWater
	TileFlower
	TileDoor
	TileHydrant
	generatedCount
)

// Palette used by the generated tileset.
var (
	colorGrass     = core.RGB{R: 58, G: 125, B: 68}
	colorGrassDark = core.RGB{R: 44, G: 100, B: 52}
	colorPath      = core.RGB{R: 170, G: 150, B: 110}
	colorPathDark  = core.RGB{R: 140, G: 120, B: 85}
	colorBrick     = core.RGB{R: 165, G: 55, B: 45}
	colorMortar    = core.RGB{R: 200, G: 190, B: 175}
	colorRoof      = core.RGB{R: 90, G: 40, B: 40}
	colorRoofLine  = core.RGB{R: 120, G: 60, B: 55}
	colorWater     = core.RGB{R: 50, G: 90, B: 190}
	colorWave      = core.RGB{R: 110, G: 160, B: 230}
	colorPetal     = core.RGB{R: 240, G: 200, B: 60}
	colorDoor      = core.RGB{R: 110, G: 70, B: 35}
	colorKnob      = core.RGB{R: 230, G: 200, B: 90}
	colorHydrant   = core.RGB{R: 220, G: 30, B: 30}
)

// Generated builds the built-in tileset: one row of tiles of the given size,
// indexed by the Tile* constants. Decorative tiles are drawn on a
// transparent background so the ground layer shows through.
func Generated(tileSize int) *Tileset {
	if tileSize <= 0 {
		tileSize = 8
	}
	img := image.NewNRGBA(image.Rect(0, 0, tileSize*generatedCount, tileSize))

	for id := 0; id < generatedCount; id++ {
		ox := id * tileSize
		for y := 0; y < tileSize; y++ {
			for x := 0; x < tileSize; x++ {
				if c, ok := generatedPixel(id, x, y, tileSize); ok {
					img.SetNRGBA(ox+x, y, toNRGBA(c))
				} else {
					img.SetNRGBA(ox+x, y, color.NRGBA{})
				}
			}
		}
	}
	return &Tileset{img: img}
}

func generatedPixel(id, x, y, size int) (core.RGB, bool) {
	half := size / 2
	switch id {
	case TileGrass:
		if (x*3+y*5)%7 == 0 {
			return colorGrassDark, true
		}
		return colorGrass, true
	case TilePath:
		if (x+y*3)%5 == 0 {
			return colorPathDark, true
		}
		return colorPath, true
	case TileBrick:
		// Running bond: mortar every half tile, offset on alternate courses
		h := max(half, 1)
		if y%h == h-1 {
			return colorMortar, true
		}
		offset := 0
		if (y/h)%2 == 1 {
			offset = h / 2
		}
		if (x+offset)%h == 0 {
			return colorMortar, true
		}
		return colorBrick, true
	case TileRoof:
		if (x+y)%4 == 0 {
			return colorRoofLine, true
		}
		return colorRoof, true
	case TileWater:
		if (x+2*(y/2))%size < 2 && y%3 == 0 {
			return colorWave, true
		}
		return colorWater, true
	case TileFlower:
		dx, dy := core.Abs(x-half), core.Abs(y-half)
		if dx+dy <= 1 {
			return colorPetal, true
		}
		return core.RGB{}, false
	case TileDoor:
		if x == 0 || x == size-1 || y == 0 {
			return colorBrick, true
		}
		if x == size-3 && y == half {
			return colorKnob, true
		}
		return colorDoor, true
	case TileHydrant:
		w := size / 4
		if core.Abs(x-half) <= w && y >= 1 {
			return colorHydrant, true
		}
		if y == half && core.Abs(x-half) <= w+1 {
			return colorHydrant, true
		}
		return core.RGB{}, false
	}
	return core.RGB{}, false
}

// Resolve returns the tileset a map asks for: the PNG at path, or the
// generated tileset when path is empty.
func Resolve(path string, tileSize int) (*Tileset, error) {
	if path == "" {
		return Generated(tileSize), nil
	}
	return Load(path)
}
