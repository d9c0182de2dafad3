// Package mover resolves entity movement against a tile grid.
//
// Update is a discrete all-or-nothing test, not swept collision: the
// candidate box is sampled at four inset corners and the whole step is
// rejected if any corner is solid. This is only correct while the step size
// stays small relative to the tile size (a step larger than a tile can jump
// over a wall). Callers keep speed well below tileSize.
package mover

import (
	"github.com/vovakirdan/tilewalk/internal/core"
)

// Margin is the default corner inset in pixels. It absorbs the visual
// padding of a sprite so that touching a wall edge does not count as a hit.
const Margin = 4

// Solidity answers point-in-solid-tile queries in world pixels.
// *tilemap.Grid satisfies it.
type Solidity interface {
	IsSolid(px, py float64) bool
}

// Options tunes collision resolution.
type Options struct {
	Margin float64
	// Slide retries each axis alone when the combined move is rejected.
	// Off by default: a diagonal move into a wall blocks both axes.
	Slide bool
}

// DefaultOptions returns the literal all-or-nothing policy with Margin.
func DefaultOptions() Options {
	return Options{Margin: Margin}
}

// Body is the moving entity: top-left position plus bounding-box size.
type Body struct {
	Pos  core.Vec
	Size core.Size
}

// Box returns the body's bounding box.
func (b Body) Box() core.Box {
	return core.Box{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.W, H: b.Size.H}
}

// Result reports what Update did.
type Result struct {
	Pos     core.Vec
	Moved   bool // position changed
	Blocked bool // a non-zero delta hit a solid tile on some axis
}

// DeltaFor converts a direction snapshot into a per-step delta. Directions
// compose additively: up+right gives dx>0, dy<0; opposite keys cancel.
func DeltaFor(in core.InputFrame, speed float64) core.Vec {
	var d core.Vec
	if in.Has(core.ActionUp) {
		d.Y -= speed
	}
	if in.Has(core.ActionDown) {
		d.Y += speed
	}
	if in.Has(core.ActionLeft) {
		d.X -= speed
	}
	if in.Has(core.ActionRight) {
		d.X += speed
	}
	return d
}

// Corners returns the four margin-inset sample points of a box at pos.
func Corners(pos core.Vec, size core.Size, margin float64) [4]core.Vec {
	return [4]core.Vec{
		{X: pos.X + margin, Y: pos.Y + margin},
		{X: pos.X + size.W - margin, Y: pos.Y + margin},
		{X: pos.X + margin, Y: pos.Y + size.H - margin},
		{X: pos.X + size.W - margin, Y: pos.Y + size.H - margin},
	}
}

// Collides reports whether any sampled corner of the box at pos is solid.
func Collides(grid Solidity, pos core.Vec, size core.Size, margin float64) bool {
	for _, p := range Corners(pos, size, margin) {
		if grid.IsSolid(p.X, p.Y) {
			return true
		}
	}
	return false
}

// Update computes the body's next position. The candidate pos+delta is
// rejected entirely if any inset corner lands in a solid tile; an accepted
// candidate is clamped into [0, bounds - size] on each axis.
func Update(body Body, delta core.Vec, grid Solidity, bounds core.Size, opts Options) Result {
	res := Result{Pos: body.Pos}
	if delta.IsZero() {
		return res
	}

	next, ok := tryMove(body, delta, grid, opts.Margin)
	if !ok {
		res.Blocked = true
		if !opts.Slide || delta.X == 0 || delta.Y == 0 {
			return res
		}
		if next, ok = tryMove(body, core.Vec{X: delta.X}, grid, opts.Margin); !ok {
			next, ok = tryMove(body, core.Vec{Y: delta.Y}, grid, opts.Margin)
		}
		if !ok {
			return res
		}
	}

	next.X = core.ClampF(next.X, 0, bounds.W-body.Size.W)
	next.Y = core.ClampF(next.Y, 0, bounds.H-body.Size.H)

	res.Pos = next
	res.Moved = next != body.Pos
	return res
}

func tryMove(body Body, delta core.Vec, grid Solidity, margin float64) (core.Vec, bool) {
	next := body.Pos.Add(delta)
	if Collides(grid, next, body.Size, margin) {
		return body.Pos, false
	}
	return next, true
}
