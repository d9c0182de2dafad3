// Package window runs a world in a desktop window using Ebitengine. The
// tileset is drawn as sub-images translated by the camera offset, the
// same transform the terminal renderer uses.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/maps"
	"github.com/vovakirdan/tilewalk/internal/render"
	"github.com/vovakirdan/tilewalk/internal/session"
	"github.com/vovakirdan/tilewalk/internal/storage"
	"github.com/vovakirdan/tilewalk/internal/tilemap"
	"github.com/vovakirdan/tilewalk/internal/tileset"
	"github.com/vovakirdan/tilewalk/internal/world"
)

// Options configures a window session.
type Options struct {
	Config  config.Config
	Tileset *tileset.Tileset // Nil draws the map without tiles
	Store   *storage.Store   // Nil disables checkpoints and session history
	User    string
	Fresh   bool
	Logger  *log.Logger
}

// ebitenKeys reads the live keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Game implements ebiten.Game for one world.
type Game struct {
	world  *world.World
	rec    *session.Recorder
	keys   KeyState
	logger *log.Logger

	tiles  *ebiten.Image // Nil when the tileset is not ready
	tilesW int
	pixel  *ebiten.Image
	style  render.Style
	debug  bool
	status string
}

// NewGame builds the world for m and uploads the tileset.
func NewGame(m maps.Map, opts Options) (*Game, error) {
	w, err := world.New(m, opts.Config)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		world:  w,
		rec:    session.New(opts.Store, opts.User, w, logger, nil),
		keys:   ebitenKeys{},
		logger: logger,
		style:  render.DefaultStyle(opts.Config.Background()),
		debug:  opts.Config.Render.Debug,
	}
	if img, err := opts.Tileset.Masked(); err == nil {
		g.tiles = ebiten.NewImageFromImage(img)
		g.tilesW = opts.Tileset.Width()
	} else {
		logger.Warn("drawing without tileset", "map", m.ID, "error", err)
	}

	if !opts.Fresh && g.rec.Restore() {
		g.status = "checkpoint restored"
	}
	return g, nil
}

// World returns the game's world.
func (g *Game) World() *world.World {
	return g.world
}

// Update advances the world one tick.
func (g *Game) Update() error {
	in := ReadInput(g.keys)
	if in.Quit {
		return ebiten.Termination
	}
	if in.Checkpoint {
		if err := g.rec.Checkpoint(); err != nil {
			g.status = "checkpoint failed"
			g.logger.Warn("checkpoint failed", "error", err)
		} else {
			g.status = "checkpoint saved"
		}
	}
	g.world.Step(in.Frame)
	return nil
}

// Draw renders the visible tiles and the player.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toColor(g.style.Background))
	f := g.world.Frame()

	if g.tiles != nil {
		for _, p := range f.Tiles {
			g.drawTile(screen, f, p)
		}
	}
	g.drawPlayer(screen, f)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.hudText(f))
	}
}

func (g *Game) drawTile(screen *ebiten.Image, f world.Frame, p tilemap.Placement) {
	src, ok := tilemap.SourceRect(p.Tile.ID, f.TileSize, g.tilesW)
	if !ok {
		return
	}
	sub := g.tiles.SubImage(image.Rect(src.X, src.Y, src.Right(), src.Bottom())).(*ebiten.Image)

	dest := f.ToScreen(core.Vec{X: float64(p.Dest.X), Y: float64(p.Dest.Y)})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Floor(dest.X), math.Floor(dest.Y))
	screen.DrawImage(sub, op)
}

func (g *Game) drawPlayer(screen *ebiten.Image, f world.Frame) {
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(color.White)
	}
	pos := f.ToScreen(f.Player.Pos())
	x, y := math.Floor(pos.X), math.Floor(pos.Y)
	w, h := f.Player.W, f.Player.H
	g.fillRect(screen, x, y, w, h, g.style.Player)

	cab := math.Max(math.Floor(w/4), 1)
	cx := x + w - cab
	if f.Facing == world.FacingLeft {
		cx = x
	}
	g.fillRect(screen, cx, y, cab, math.Max(math.Floor(h/2), 1), g.style.Cab)

	if f.State.Moving && (f.State.Tick/15)%2 == 0 {
		g.fillRect(screen, x+math.Floor(w/2), y, 1, 1, g.style.Light)
	}
}

func (g *Game) fillRect(screen *ebiten.Image, x, y, w, h float64, c core.RGB) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toColor(c))
	screen.DrawImage(g.pixel, op)
}

func (g *Game) hudText(f world.Frame) string {
	pos := f.Player.Pos()
	text := fmt.Sprintf("%s x:%.0f y:%.0f %s", g.world.Map().Title(), pos.X, pos.Y, f.Facing)
	if g.tiles == nil {
		text += " no tileset"
	}
	if f.State.Paused {
		text += " PAUSED"
	}
	if g.status != "" {
		text += "\n" + g.status
	}
	return text
}

// Layout returns the viewport size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cam := g.world.Camera()
	vp := cam.Viewport()
	return int(vp.W), int(vp.H)
}

// Finish saves the final checkpoint and session.
func (g *Game) Finish() error {
	return g.rec.Finish()
}

func toColor(c core.RGB) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Run opens a window on m and blocks until it is closed.
func Run(m maps.Map, opts Options) error {
	g, err := NewGame(m, opts)
	if err != nil {
		return err
	}

	scale := max(opts.Config.Render.Scale, 1)
	ebiten.SetWindowSize(opts.Config.Viewport.Width*scale, opts.Config.Viewport.Height*scale)
	ebiten.SetWindowTitle("tilewalk - " + m.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Config.Runtime.TickRate)

	g.logger.Info("window started", "map", m.ID, "scale", scale)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if ferr := g.Finish(); err == nil {
		err = ferr
	}
	return err
}
