// Package tileset holds the tileset image that tile ids index into.
package tileset

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/vovakirdan/tilewalk/internal/core"
)

// ErrNotReady is returned when pixels are requested from a tileset that has
// no decoded image.
var ErrNotReady = errors.New("tileset: image not ready")

// Tileset is a decoded tileset image. A nil *Tileset is valid and reports
// itself as not ready.
type Tileset struct {
	img  image.Image
	path string
}

// Load opens and decodes a PNG tileset.
func Load(path string) (*Tileset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ts, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	ts.path = path
	return ts, nil
}

// Decode reads a PNG tileset from r.
func Decode(r io.Reader) (*Tileset, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image) *Tileset {
	return &Tileset{img: img}
}

// Ready reports whether the tileset has an image with a non-zero width.
func (t *Tileset) Ready() bool {
	return t != nil && t.img != nil && t.img.Bounds().Dx() > 0
}

// Width returns the image width in pixels, or 0 when not ready.
func (t *Tileset) Width() int {
	if !t.Ready() {
		return 0
	}
	return t.img.Bounds().Dx()
}

// Height returns the image height in pixels, or 0 when not ready.
func (t *Tileset) Height() int {
	if !t.Ready() {
		return 0
	}
	return t.img.Bounds().Dy()
}

// Path returns the file the tileset was loaded from, if any.
func (t *Tileset) Path() string {
	if t == nil {
		return ""
	}
	return t.path
}

// Image returns the underlying image.
func (t *Tileset) Image() (image.Image, error) {
	if !t.Ready() {
		return nil, ErrNotReady
	}
	return t.img, nil
}

// Pixel samples the image at (x, y) relative to its top-left corner.
// ok is false for transparent pixels (alpha below half, or magenta) and for
// positions outside the image.
func (t *Tileset) Pixel(x, y int) (c core.RGB, ok bool) {
	if !t.Ready() {
		return c, false
	}
	b := t.img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return c, false
	}

	r, g, bl, a := t.img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	c = core.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}
	if a < 0x8000 || (c.R == 0xFF && c.G == 0x00 && c.B == 0xFF) {
		return core.RGB{}, false
	}
	return c, true
}

// Masked returns an opaque copy of the image with every pixel Pixel treats
// as transparent cleared, for renderers that blend alpha themselves.
func (t *Tileset) Masked() (*image.NRGBA, error) {
	if !t.Ready() {
		return nil, ErrNotReady
	}
	w, h := t.Width(), t.Height()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c, ok := t.Pixel(x, y); ok {
				out.SetNRGBA(x, y, toNRGBA(c))
			}
		}
	}
	return out, nil
}

// Encode writes the tileset as PNG.
func (t *Tileset) Encode(w io.Writer) error {
	if !t.Ready() {
		return ErrNotReady
	}
	return png.Encode(w, t.img)
}

func toNRGBA(c core.RGB) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
