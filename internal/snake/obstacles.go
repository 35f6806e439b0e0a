package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/levels"
)

var (
	// ErrLayoutOutOfBounds is returned when a level places obstacles off the board.
	ErrLayoutOutOfBounds = errors.New("snake: level does not fit the board")

	// ErrStartBlocked is returned when an obstacle covers the snake's starting cells.
	ErrStartBlocked = errors.New("snake: obstacle on the snake's start")
)

// ObstacleSet is the immutable set of blocked cells of a round.
type ObstacleSet struct {
	cells map[core.Cell]struct{}
}

// NewObstacleSet creates a set from the given cells.
func NewObstacleSet(cells []core.Cell) ObstacleSet {
	set := ObstacleSet{cells: make(map[core.Cell]struct{}, len(cells))}
	for _, c := range cells {
		set.cells[c] = struct{}{}
	}
	return set
}

// Contains reports whether c is blocked.
func (o ObstacleSet) Contains(c core.Cell) bool {
	_, ok := o.cells[c]
	return ok
}

// Len returns the number of blocked cells.
func (o ObstacleSet) Len() int {
	return len(o.cells)
}

// Cells returns the blocked cells in row-major order.
func (o ObstacleSet) Cells() []core.Cell {
	cells := make([]core.Cell, 0, len(o.cells))
	for c := range o.cells {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// ObstacleSource produces the obstacles for a new round.
// reserved holds cells that must stay free (the snake's starting body).
type ObstacleSource interface {
	Obstacles(bounds core.Bounds, rng *rand.Rand, reserved []core.Cell) (ObstacleSet, error)
	Describe() string
}

// LevelSource takes obstacles from a text layout.
type LevelSource struct {
	Level levels.Level
}

// Obstacles validates the layout against the board and the reserved cells.
func (s LevelSource) Obstacles(bounds core.Bounds, _ *rand.Rand, reserved []core.Cell) (ObstacleSet, error) {
	for _, c := range s.Level.Obstacles {
		if !bounds.Contains(c) {
			return ObstacleSet{}, fmt.Errorf("%w: %s has obstacle %v outside %dx%d",
				ErrLayoutOutOfBounds, s.Level.ID, c, bounds.Rows, bounds.Cols)
		}
	}

	set := NewObstacleSet(s.Level.Obstacles)
	for _, c := range reserved {
		if set.Contains(c) {
			return ObstacleSet{}, fmt.Errorf("%w: %s blocks %v", ErrStartBlocked, s.Level.ID, c)
		}
	}
	return set, nil
}

// Describe returns the level name.
func (s LevelSource) Describe() string {
	return s.Level.Name
}

// RandomSource scatters Count obstacle cells uniformly over the free board.
// The cells directly ahead of the starting head are kept clear so the
// first ticks are never fatal.
type RandomSource struct {
	Count     int
	Direction core.Direction // Starting heading used to keep the lane clear
	Lane      int            // Number of cells ahead of the head kept free
}

// Obstacles picks the random cells.
func (s RandomSource) Obstacles(bounds core.Bounds, rng *rand.Rand, reserved []core.Cell) (ObstacleSet, error) {
	blocked := make(map[core.Cell]struct{}, len(reserved)+s.Lane)
	for _, c := range reserved {
		blocked[c] = struct{}{}
	}
	if len(reserved) > 0 {
		c := reserved[0]
		for range s.Lane {
			c = bounds.Wrap(c.Add(s.Direction))
			blocked[c] = struct{}{}
		}
	}

	var free []core.Cell
	for _, c := range bounds.Cells() {
		if _, ok := blocked[c]; !ok {
			free = append(free, c)
		}
	}

	count := min(max(s.Count, 0), len(free))
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	return NewObstacleSet(free[:count]), nil
}

// Describe summarizes the source.
func (s RandomSource) Describe() string {
	return fmt.Sprintf("%d random blocks", s.Count)
}

// NoObstacles is an empty board.
type NoObstacles struct{}

// Obstacles returns an empty set.
func (NoObstacles) Obstacles(core.Bounds, *rand.Rand, []core.Cell) (ObstacleSet, error) {
	return NewObstacleSet(nil), nil
}

// Describe returns "open field".
func (NoObstacles) Describe() string {
	return "open field"
}
