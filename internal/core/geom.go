// Package core holds the terminal-agnostic building blocks shared by the game
// and the TUI: actions, input frames, the cell screen and layout helpers.
// Nothing here imports Bubble Tea.
package core

import (
	"cmp"
	"math"
)

// Rect is a cell-aligned screen rectangle.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the rectangle at (x, y) with size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the column just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the row just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Inset shrinks r by n cells on every side, never below zero size.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(0, r.W-2*n),
		H: max(0, r.H-2*n),
	}
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// MapRange maps v from [fromA, fromB] onto [toA, toB], rounded to the given
// number of decimals. A degenerate source range maps everything to toA.
func MapRange(v, fromA, fromB, toA, toB float64, decimals int) float64 {
	span := fromB - fromA
	if span == 0 {
		return toA
	}
	mapped := toA + (v-fromA)*(toB-toA)/span
	scale := math.Pow(10, float64(decimals))
	return math.Round(mapped*scale) / scale
}
