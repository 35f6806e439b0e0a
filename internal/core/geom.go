// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Cell is a discrete grid coordinate. Row grows downward, Col grows rightward.
type Cell struct {
	Row, Col int
}

// Add returns the cell offset by the given direction.
func (c Cell) Add(d Direction) Cell {
	return Cell{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Sub returns the cell offset by the reverse of the given direction.
func (c Cell) Sub(d Direction) Cell {
	return Cell{Row: c.Row - d.DRow, Col: c.Col - d.DCol}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is a unit step on the grid.
type Direction struct {
	DRow, DCol int
}

// The four movement directions.
var (
	DirUp    = Direction{DRow: -1}
	DirDown  = Direction{DRow: 1}
	DirLeft  = Direction{DCol: -1}
	DirRight = Direction{DCol: 1}
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// IsZero reports whether d is the zero step.
func (d Direction) IsZero() bool {
	return d.DRow == 0 && d.DCol == 0
}

// IsUnit reports whether d is one of the four movement directions.
func (d Direction) IsUnit() bool {
	return d == DirUp || d == DirDown || d == DirLeft || d == DirRight
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DRow, d.DCol)
	}
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return Direction{}, fmt.Errorf("core: unknown direction %q", s)
}

// Bounds is the size of the board in cells.
// A zero Bounds is unbounded: Wrap and Delta leave coordinates untouched.
type Bounds struct {
	Rows, Cols int
}

// Contains returns true if the cell lies on the board.
func (b Bounds) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// Area returns the number of cells on the board.
func (b Bounds) Area() int {
	return b.Rows * b.Cols
}

// Wrap maps a cell onto the board toroidally.
// A coordinate equal to the bound wraps to 0, and -1 wraps to bound-1.
func (b Bounds) Wrap(c Cell) Cell {
	if b.Rows > 0 {
		c.Row = wrap(c.Row, b.Rows)
	}
	if b.Cols > 0 {
		c.Col = wrap(c.Col, b.Cols)
	}
	return c
}

// Delta returns the step that leads from one cell to an adjacent one,
// taking the wrap seam into account.
func (b Bounds) Delta(from, to Cell) Direction {
	return Direction{
		DRow: seamDelta(to.Row-from.Row, b.Rows),
		DCol: seamDelta(to.Col-from.Col, b.Cols),
	}
}

// Cells returns every cell of the board in row-major order.
func (b Bounds) Cells() []Cell {
	cells := make([]Cell, 0, b.Area())
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// seamDelta turns a raw difference of n-1 across the seam back into a unit step.
func seamDelta(d, n int) int {
	if n > 1 {
		if d == n-1 {
			return -1
		}
		if d == -(n - 1) {
			return 1
		}
	}
	return d
}

// Rect represents an axis-aligned box in screen coordinates.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
