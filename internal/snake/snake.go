package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the player-controlled body on a toroidal board.
// The head is segments[0]; the body always has at least two segments.
type Snake struct {
	segments  []core.Cell
	direction core.Direction
	locked    bool // A direction change was attempted since the last move
	bounds    core.Bounds
}

// NewSnake creates a two-segment snake with its head at head, moving in dir.
// The trailing segment sits one step behind the head.
func NewSnake(head core.Cell, dir core.Direction, bounds core.Bounds) *Snake {
	return &Snake{
		segments:  []core.Cell{head, bounds.Wrap(head.Sub(dir))},
		direction: dir,
		bounds:    bounds,
	}
}

// ChangeDirection turns the snake unless a change was already attempted this
// tick or dir would reverse it onto its own neck. Either way the snake is
// locked until the next move.
func (s *Snake) ChangeDirection(dir core.Direction) {
	if !s.locked && dir != s.direction.Opposite() && !dir.IsZero() {
		s.direction = dir
	}
	s.locked = true
}

// NextHead returns the cell the head moves into next, wrapped to the board.
func (s *Snake) NextHead() core.Cell {
	return s.bounds.Wrap(s.segments[0].Add(s.direction))
}

// Move drops the tail and makes next the new head. It starts a new tick, so
// the direction lock is released.
func (s *Snake) Move(next core.Cell) {
	copy(s.segments[1:], s.segments[:len(s.segments)-1])
	s.segments[0] = next
	s.locked = false
}

// Grow appends a tail segment one step beyond the current tail, continuing the
// line from the second-to-last segment through the last one.
func (s *Snake) Grow() {
	last := s.segments[len(s.segments)-1]
	prev := s.segments[len(s.segments)-2]
	step := s.bounds.Delta(prev, last)
	s.segments = append(s.segments, s.bounds.Wrap(last.Add(step)))
}

// IsCollision reports whether the head overlaps any other segment.
func (s *Snake) IsCollision() bool {
	return slices.Contains(s.segments[1:], s.segments[0])
}

// Occupies reports whether any segment lies on c.
func (s *Snake) Occupies(c core.Cell) bool {
	return slices.Contains(s.segments, c)
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.segments[0]
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []core.Cell {
	return slices.Clone(s.segments)
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Locked reports whether a direction change was already attempted this tick.
func (s *Snake) Locked() bool {
	return s.locked
}
