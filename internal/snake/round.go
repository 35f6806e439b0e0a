// Package snake implements the snake simulation: the snake body, obstacles,
// bonuses and the round controller that advances them one tick at a time.
// Game logic here has no terminal dependencies; the platform renders
// snapshots handed to a RenderSink.
package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// EndCause records why a round terminated.
type EndCause int

const (
	CauseNone     EndCause = iota
	CauseSelf              // Head ran into the body
	CauseObstacle          // Head ran into an obstacle
)

func (c EndCause) String() string {
	switch c {
	case CauseSelf:
		return "bit itself"
	case CauseObstacle:
		return "hit an obstacle"
	default:
		return ""
	}
}

// Options configures a new round.
type Options struct {
	Bounds    core.Bounds
	Start     core.Cell      // Initial head cell
	Direction core.Direction // Initial heading
	TickRate  int            // Base ticks per second
	Obstacles ObstacleSource // nil means an open board
	Bonuses   []BonusKind    // Kinds the spawner picks from uniformly
	Seed      int64
	Sink      RenderSink // Receives a snapshot at the end of every tick; may be nil
}

// Round owns the snake, obstacles and bonus of one game and advances them.
type Round struct {
	bounds    core.Bounds
	snake     *Snake
	obstacles ObstacleSet
	obsCells  []core.Cell // Sorted copy for snapshots
	level     string
	spawner   *Spawner
	bonus     Bonus
	hasBonus  bool
	sink      RenderSink

	tick     uint64
	eaten    int
	baseRate int
	tickRate int
	running  bool
	paused   bool
	cause    EndCause
}

// NewRound validates the options, places the snake and obstacles and spawns
// the first bonus.
func NewRound(opts Options) (*Round, error) {
	if opts.Bounds.Rows < config.MinBoardSize || opts.Bounds.Cols < config.MinBoardSize {
		return nil, fmt.Errorf("snake: board must be at least %dx%d, got %dx%d",
			config.MinBoardSize, config.MinBoardSize, opts.Bounds.Rows, opts.Bounds.Cols)
	}
	if !opts.Bounds.Contains(opts.Start) {
		return nil, fmt.Errorf("snake: start %v is off the board", opts.Start)
	}
	if !opts.Direction.IsUnit() {
		return nil, fmt.Errorf("snake: direction %v is not a unit step", opts.Direction)
	}
	if opts.TickRate <= 0 {
		return nil, errors.New("snake: tick rate must be positive")
	}
	if len(opts.Bonuses) == 0 {
		return nil, errors.New("snake: at least one bonus kind is required")
	}

	src := opts.Obstacles
	if src == nil {
		src = NoObstacles{}
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	sn := NewSnake(opts.Start, opts.Direction, opts.Bounds)

	obstacles, err := src.Obstacles(opts.Bounds, rng, sn.Segments())
	if err != nil {
		return nil, err
	}

	r := &Round{
		bounds:    opts.Bounds,
		snake:     sn,
		obstacles: obstacles,
		obsCells:  obstacles.Cells(),
		level:     src.Describe(),
		spawner:   NewSpawner(opts.Bounds, opts.Bonuses, rng),
		sink:      opts.Sink,
		baseRate:  opts.TickRate,
		tickRate:  opts.TickRate,
		running:   true,
	}
	r.bonus, r.hasBonus = r.spawner.Spawn(r.snake, r.obstacles)
	return r, nil
}

// Step advances the round by one tick:
// input, move, bonus pickup, collision check, render.
func (r *Round) Step(in core.InputFrame) core.StepResult {
	if !r.running {
		return core.StepResult{State: r.State()}
	}

	if in.Has(core.ActionPause) {
		r.paused = !r.paused
	}
	if r.paused {
		r.render()
		return core.StepResult{State: r.State()}
	}

	r.tick++

	// Reverse requests are filtered here so they do not consume the tick's
	// direction change; the snake applies its own guard as well.
	for _, d := range in.Directions() {
		if d == r.snake.Direction().Opposite() {
			continue
		}
		r.snake.ChangeDirection(d)
	}

	r.snake.Move(r.snake.NextHead())

	// Pickup is resolved before the fatal check.
	picked := false
	if r.hasBonus && r.snake.Head() == r.bonus.Pos {
		r.bonus.Kind.Apply(r)
		r.eaten++
		picked = true
		r.bonus, r.hasBonus = r.spawner.Spawn(r.snake, r.obstacles)
	}

	switch {
	case r.snake.IsCollision():
		r.end(CauseSelf)
	case r.obstacles.Contains(r.snake.Head()):
		r.end(CauseObstacle)
	}

	r.render()
	return core.StepResult{State: r.State(), Picked: picked}
}

func (r *Round) end(cause EndCause) {
	r.running = false
	r.cause = cause
}

func (r *Round) render() {
	if r.sink != nil {
		r.sink.Render(r.Snapshot())
	}
}

// State returns the current round state. Score equals the snake length.
func (r *Round) State() core.GameState {
	return core.GameState{
		Score:    r.snake.Len(),
		GameOver: !r.running,
		Paused:   r.paused,
	}
}

// GrowSnake extends the snake by one segment. Bonus kinds call it from Apply.
func (r *Round) GrowSnake() {
	r.snake.Grow()
}

// TickRate returns the current pace in ticks per second.
func (r *Round) TickRate() int {
	return r.tickRate
}

// BaseTickRate returns the pace the round started with.
func (r *Round) BaseTickRate() int {
	return r.baseRate
}

// SetTickRate changes the pace. Values below one are ignored.
func (r *Round) SetTickRate(rate int) {
	if rate >= 1 {
		r.tickRate = rate
	}
}

// Head returns the snake's head cell.
func (r *Round) Head() core.Cell {
	return r.snake.Head()
}

// Len returns the snake length.
func (r *Round) Len() int {
	return r.snake.Len()
}

// Bonus returns the active bonus, if any.
func (r *Round) Bonus() (Bonus, bool) {
	return r.bonus, r.hasBonus
}

// Obstacles returns the round's obstacle set.
func (r *Round) Obstacles() ObstacleSet {
	return r.obstacles
}

// Running reports whether the round is still in play.
func (r *Round) Running() bool {
	return r.running
}

// Cause returns why the round ended, or CauseNone while running.
func (r *Round) Cause() EndCause {
	return r.cause
}

// Tick returns the number of simulated ticks.
func (r *Round) Tick() uint64 {
	return r.tick
}

// Eaten returns the number of bonuses consumed.
func (r *Round) Eaten() int {
	return r.eaten
}
