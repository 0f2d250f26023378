// Package core provides fundamental types and utilities for the slither
// engine and platform. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

// Position is a single cell on the play field grid.
type Position struct {
	X, Y int
}

// Direction represents the snake's heading: a unit vector in grid
// space. Exactly one axis is ever nonzero.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit vector for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	}
	return 0, 0
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Bounds is the play field extent. Valid coordinates are [0,W) x [0,H).
type Bounds struct {
	W, H int
}

// Wrap reduces signed coordinates into bounds toroidally: moving off one
// edge re-enters from the opposite edge. All head-position updates run
// through signed arithmetic and then this single explicit re-wrapping
// step, never through unsigned overflow.
func (b Bounds) Wrap(x, y int) Position {
	x %= b.W
	if x < 0 {
		x += b.W
	}
	y %= b.H
	if y < 0 {
		y += b.H
	}
	return Position{X: x, Y: y}
}

// Step returns the position one cell away from p in direction d,
// wrapped into bounds.
func (b Bounds) Step(p Position, d Direction) Position {
	dx, dy := d.Delta()
	return b.Wrap(p.X+dx, p.Y+dy)
}

// Contains reports whether p lies within bounds.
func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.W && p.Y >= 0 && p.Y < b.H
}

// Area returns the number of cells in the field.
func (b Bounds) Area() int {
	return b.W * b.H
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
