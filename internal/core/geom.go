// Package core provides fundamental types and utilities shared by the tile engine.
// It contains no external dependencies (especially no Bubble Tea) to keep engine
// logic pure and testable.
package core

import "math"

// Rect represents an integer axis-aligned rectangle in pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec is a position or displacement in world pixels. Components may be fractional.
type Vec struct {
	X, Y float64
}

// V is a convenience constructor for Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Len returns the Euclidean length.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H float64
}

// Box is a positioned bounding box in world pixels.
type Box struct {
	X, Y float64
	W, H float64
}

// Pos returns the top-left corner.
func (b Box) Pos() Vec {
	return Vec{X: b.X, Y: b.Y}
}

// Center returns the center of the box.
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// ClampF restricts a float64 value to be within [min, max].
// When max < min the result is min, so an empty range collapses to its lower bound.
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(val, max))
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// TileRange is an inclusive range of tile columns and rows.
type TileRange struct {
	StartCol, EndCol int
	StartRow, EndRow int
}

// Contains reports whether tile (col, row) lies inside the range.
func (r TileRange) Contains(col, row int) bool {
	return col >= r.StartCol && col <= r.EndCol && row >= r.StartRow && row <= r.EndRow
}
