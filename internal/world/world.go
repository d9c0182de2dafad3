// Package world runs the per-tick pipeline: input snapshot, movement and
// collision, camera follow, then the visible tile query. It is pure logic
// with no terminal, window or storage dependencies; front-ends drive Step
// at a fixed rate and draw what Frame returns.
package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tilewalk/internal/camera"
	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/maps"
	"github.com/vovakirdan/tilewalk/internal/mover"
	"github.com/vovakirdan/tilewalk/internal/tilemap"
)

// ErrBlocked is returned when a position would put the player inside a solid tile.
var ErrBlocked = errors.New("position is inside a solid tile")

// Facing is the horizontal direction the player sprite faces.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// ParseFacing converts a stored facing name back. Unknown names face right.
func ParseFacing(s string) Facing {
	if s == "left" {
		return FacingLeft
	}
	return FacingRight
}

// World is a single-player session on one map.
type World struct {
	m    maps.Map
	grid *tilemap.Grid
	cam  *camera.Camera

	body   mover.Body
	opts   mover.Options
	speed  float64
	bounds core.Size
	spawn  core.Vec

	facing  Facing
	moving  bool
	blocked bool
	paused  bool

	// Animation
	animFrame   int
	frameTimer  float64
	animSpeed   float64
	totalFrames int

	tick     uint64
	distance float64
	area     core.TileRange
	debug    bool
}

// New builds the grid, camera and player for a map. The spawn comes from
// the config override, then the map, then the origin.
func New(m maps.Map, cfg config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := m.Grid()
	if err != nil {
		return nil, fmt.Errorf("world: map %s: %w", m.ID, err)
	}

	bounds := grid.PixelSize()
	w := &World{
		m:    m,
		grid: grid,
		cam:  camera.New(float64(cfg.Viewport.Width), float64(cfg.Viewport.Height), bounds),
		body: mover.Body{
			Size: core.Size{W: float64(cfg.Player.Width), H: float64(cfg.Player.Height)},
		},
		opts:        mover.Options{Margin: cfg.Player.Margin, Slide: cfg.Player.Slide},
		speed:       cfg.Player.Speed,
		bounds:      bounds,
		animSpeed:   cfg.Player.AnimSpeed,
		totalFrames: cfg.Player.Frames,
		debug:       cfg.Render.Debug,
	}

	switch p, ok := cfg.Spawn(); {
	case ok:
		w.spawn = p
	case m.Spawn != nil:
		w.spawn = *m.Spawn
	}
	if err := w.place(w.spawn); err != nil {
		return nil, fmt.Errorf("world: spawn on map %s: %w", m.ID, err)
	}
	w.spawn = w.body.Pos
	return w, nil
}

// place clamps pos into the map, rejects solid positions and re-centers the camera.
func (w *World) place(pos core.Vec) error {
	pos.X = core.ClampF(pos.X, 0, w.bounds.W-w.body.Size.W)
	pos.Y = core.ClampF(pos.Y, 0, w.bounds.H-w.body.Size.H)
	if mover.Collides(w.grid, pos, w.body.Size, w.opts.Margin) {
		return fmt.Errorf("%w: (%.0f, %.0f)", ErrBlocked, pos.X, pos.Y)
	}
	w.body.Pos = pos
	w.follow()
	return nil
}

func (w *World) follow() {
	w.cam.Follow(w.body.Box())
	w.area = w.cam.VisibleArea(w.grid.TileSize())
}

// Step advances the world by one tick. ActionPause toggles pause; while
// paused nothing moves and the tick counter holds.
func (w *World) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		w.paused = !w.paused
	}
	if w.paused {
		w.moving = false
		return core.StepResult{State: w.State()}
	}

	w.tick++
	delta := mover.DeltaFor(in, w.speed)
	res := mover.Update(w.body, delta, w.grid, w.bounds, w.opts)

	w.moving = !delta.IsZero()
	w.blocked = res.Blocked
	switch {
	case delta.X > 0:
		w.facing = FacingRight
	case delta.X < 0:
		w.facing = FacingLeft
	}

	if res.Moved {
		w.distance += res.Pos.Sub(w.body.Pos).Len()
		w.body.Pos = res.Pos
	}
	w.updateAnimation()
	w.follow()

	return core.StepResult{State: w.State()}
}

// updateAnimation advances the sprite frame while the player is moving.
func (w *World) updateAnimation() {
	if !w.moving {
		return
	}
	w.frameTimer += w.animSpeed
	if w.frameTimer >= 1 {
		w.frameTimer = 0
		w.animFrame = (w.animFrame + 1) % w.totalFrames
	}
}

// State returns the current world state.
func (w *World) State() core.WorldState {
	return core.WorldState{
		Tick:     w.tick,
		Moving:   w.moving,
		Blocked:  w.blocked,
		Paused:   w.paused,
		Distance: w.distance,
	}
}

// TogglePause pauses or resumes the world.
func (w *World) TogglePause() {
	w.paused = !w.paused
}

// Paused reports whether the world is paused.
func (w *World) Paused() bool {
	return w.paused
}

// Restore places the player at a saved position. The position is clamped
// to the map; a position whose sampled corners are solid is rejected and
// the player stays where it was.
func (w *World) Restore(x, y float64, facing Facing) error {
	if err := w.place(core.Vec{X: x, Y: y}); err != nil {
		return err
	}
	w.facing = facing
	return nil
}

// Respawn returns the player to the spawn point.
func (w *World) Respawn() {
	// The spawn was validated in New.
	_ = w.place(w.spawn)
	w.facing = FacingRight
}

// Map returns the map the world was built from.
func (w *World) Map() maps.Map {
	return w.m
}

// Grid returns the tile grid.
func (w *World) Grid() *tilemap.Grid {
	return w.grid
}

// Camera returns a copy of the camera.
func (w *World) Camera() camera.Camera {
	return *w.cam
}

// Player returns the player's body.
func (w *World) Player() mover.Body {
	return w.body
}

// Facing returns the player's facing direction.
func (w *World) Facing() Facing {
	return w.facing
}
