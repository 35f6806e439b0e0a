package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// StateType represents the current round state.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StatePaused   StateType = "paused"
	StateGameOver StateType = "game_over"
)

// BonusView is the read-only description of the active bonus.
type BonusView struct {
	Active bool
	Pos    core.Cell
	Name   string
	Symbol rune
	Color  core.Color
}

// Snapshot captures the complete round state. It owns its slices, so a sink
// may keep it after Render returns.
type Snapshot struct {
	Tick         uint64
	Bounds       core.Bounds
	Segments     []core.Cell // Head first
	Direction    core.Direction
	Bonus        BonusView
	Obstacles    []core.Cell
	Level        string
	Score        int
	Eaten        int
	TickRate     int
	BaseTickRate int
	State        StateType
	Cause        EndCause
}

// Head returns the head cell of the snapshot.
func (s Snapshot) Head() core.Cell {
	return s.Segments[0]
}

// RenderSink receives a snapshot at the end of every tick.
type RenderSink interface {
	Render(Snapshot)
}

// SinkFunc adapts a function to RenderSink.
type SinkFunc func(Snapshot)

// Render calls f(s).
func (f SinkFunc) Render(s Snapshot) {
	f(s)
}

// Snapshot returns the current round state.
func (r *Round) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case !r.running:
		state = StateGameOver
	case r.paused:
		state = StatePaused
	}

	var bonus BonusView
	if r.hasBonus {
		bonus = BonusView{
			Active: true,
			Pos:    r.bonus.Pos,
			Name:   r.bonus.Kind.Name(),
			Symbol: r.bonus.Kind.Symbol(),
			Color:  r.bonus.Kind.Color(),
		}
	}

	return Snapshot{
		Tick:         r.tick,
		Bounds:       r.bounds,
		Segments:     r.snake.Segments(),
		Direction:    r.snake.Direction(),
		Bonus:        bonus,
		Obstacles:    slices.Clone(r.obsCells),
		Level:        r.level,
		Score:        r.snake.Len(),
		Eaten:        r.eaten,
		TickRate:     r.tickRate,
		BaseTickRate: r.baseRate,
		State:        state,
		Cause:        r.cause,
	}
}
