package snake

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/levels"
)

// far is a cell the tests never steer the head into.
var far = core.Cell{Row: 0, Col: 30}

func newTestRound(t *testing.T, opts Options) *Round {
	t.Helper()
	if opts.Bounds == (core.Bounds{}) {
		opts.Bounds = board
	}
	if opts.Start == (core.Cell{}) {
		opts.Start = core.Cell{Row: 12, Col: 8}
	}
	if opts.Direction.IsZero() {
		opts.Direction = core.DirRight
	}
	if opts.TickRate == 0 {
		opts.TickRate = 10
	}
	if opts.Bonuses == nil {
		opts.Bonuses = []BonusKind{apple{}}
	}

	r, err := NewRound(opts)
	if err != nil {
		t.Fatalf("NewRound failed: %v", err)
	}
	// Park the bonus where it cannot interfere
	r.bonus = Bonus{Pos: far, Kind: apple{}}
	r.hasBonus = true
	return r
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRoundMovesStraight(t *testing.T) {
	r := newTestRound(t, Options{})

	for range 3 {
		r.Step(frame())
	}

	if r.Head() != (core.Cell{Row: 12, Col: 11}) {
		t.Errorf("head = %v, expected (12,11)", r.Head())
	}
	if r.Len() != 2 {
		t.Errorf("length = %d, expected 2", r.Len())
	}
	if !r.Running() || r.Tick() != 3 {
		t.Errorf("running = %v tick = %d", r.Running(), r.Tick())
	}
}

func TestRoundIgnoresReverse(t *testing.T) {
	r := newTestRound(t, Options{})

	r.Step(frame(core.ActionLeft))
	if r.Head() != (core.Cell{Row: 12, Col: 9}) {
		t.Errorf("head = %v, expected (12,9)", r.Head())
	}
	if !r.Running() {
		t.Error("reverse input ended the round")
	}
}

func TestRoundReverseDoesNotConsumeTurn(t *testing.T) {
	r := newTestRound(t, Options{})

	r.Step(frame(core.ActionLeft, core.ActionDown))
	if r.Head() != (core.Cell{Row: 13, Col: 8}) {
		t.Errorf("head = %v, expected (13,8)", r.Head())
	}
}

func TestRoundOneTurnPerTick(t *testing.T) {
	r := newTestRound(t, Options{})

	r.Step(frame(core.ActionUp, core.ActionLeft))
	if r.Head() != (core.Cell{Row: 11, Col: 8}) {
		t.Errorf("head = %v, expected (11,8)", r.Head())
	}
	if r.Snapshot().Direction != core.DirUp {
		t.Errorf("direction = %v, expected up", r.Snapshot().Direction)
	}
}

func TestRoundPickup(t *testing.T) {
	r := newTestRound(t, Options{})
	r.bonus = Bonus{Pos: core.Cell{Row: 12, Col: 9}, Kind: apple{}}

	res := r.Step(frame())
	if !res.Picked {
		t.Fatal("expected pickup")
	}
	if r.Len() != 3 || res.State.Score != 3 {
		t.Errorf("length = %d score = %d, expected 3", r.Len(), res.State.Score)
	}
	if r.Eaten() != 1 {
		t.Errorf("eaten = %d, expected 1", r.Eaten())
	}

	b, ok := r.Bonus()
	if !ok {
		t.Fatal("a new bonus should be active")
	}
	if r.snake.Occupies(b.Pos) {
		t.Errorf("new bonus %v spawned on the snake", b.Pos)
	}
}

func TestRoundObstacleEndsRound(t *testing.T) {
	lvl := levels.Level{ID: "test", Name: "test", Obstacles: []core.Cell{{Row: 12, Col: 10}}}
	r := newTestRound(t, Options{Obstacles: LevelSource{Level: lvl}})

	r.Step(frame())
	if !r.Running() {
		t.Fatal("round ended early")
	}

	res := r.Step(frame())
	if !res.State.GameOver || r.Running() {
		t.Fatal("expected game over")
	}
	if r.Cause() != CauseObstacle {
		t.Errorf("cause = %v, expected obstacle", r.Cause())
	}

	// Further steps are ignored
	r.Step(frame())
	if r.Tick() != 2 {
		t.Errorf("tick = %d after game over, expected 2", r.Tick())
	}
}

func TestRoundSelfCollision(t *testing.T) {
	r := newTestRound(t, Options{})
	for range 3 {
		r.GrowSnake()
	}

	r.Step(frame(core.ActionDown))
	r.Step(frame(core.ActionLeft))
	r.Step(frame(core.ActionUp))

	if r.Running() {
		t.Fatal("expected the round to end")
	}
	if r.Cause() != CauseSelf {
		t.Errorf("cause = %v, expected self", r.Cause())
	}
}

func TestRoundPickupBeforeCollision(t *testing.T) {
	// Bonus on an obstacle-free cell the head reaches on the fatal tick is
	// still consumed before the round ends.
	r := newTestRound(t, Options{})
	for range 3 {
		r.GrowSnake()
	}
	r.Step(frame(core.ActionDown))
	r.Step(frame(core.ActionLeft))
	r.bonus = Bonus{Pos: core.Cell{Row: 12, Col: 7}, Kind: apple{}}

	res := r.Step(frame(core.ActionUp))
	if !res.Picked {
		t.Error("bonus on the fatal cell should be consumed")
	}
	if !res.State.GameOver {
		t.Error("expected game over")
	}
	if r.Len() != 6 {
		t.Errorf("length = %d, expected 6", r.Len())
	}
}

func TestRoundPause(t *testing.T) {
	r := newTestRound(t, Options{})

	res := r.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	r.Step(frame(core.ActionDown))
	if r.Tick() != 0 || r.Head() != (core.Cell{Row: 12, Col: 8}) {
		t.Errorf("paused round advanced: tick %d head %v", r.Tick(), r.Head())
	}

	r.Step(frame(core.ActionPause))
	if r.Tick() != 1 || r.Head() != (core.Cell{Row: 12, Col: 9}) {
		t.Errorf("resumed round: tick %d head %v", r.Tick(), r.Head())
	}
}

func TestRoundSinkOncePerTick(t *testing.T) {
	var snaps []Snapshot
	lvl := levels.Level{ID: "wall", Name: "wall", Obstacles: []core.Cell{{Row: 12, Col: 11}}}
	r := newTestRound(t, Options{
		Obstacles: LevelSource{Level: lvl},
		Sink:      SinkFunc(func(s Snapshot) { snaps = append(snaps, s) }),
	})

	for range 5 {
		r.Step(frame())
	}

	// Three ticks, the last one fatal; nothing after the end
	if len(snaps) != 3 {
		t.Fatalf("sink called %d times, expected 3", len(snaps))
	}
	last := snaps[2]
	if last.State != StateGameOver || last.Cause != CauseObstacle {
		t.Errorf("last snapshot state = %s cause = %v", last.State, last.Cause)
	}
	if !slices.Equal(last.Obstacles, []core.Cell{{Row: 12, Col: 11}}) {
		t.Errorf("obstacles = %v", last.Obstacles)
	}
	if snaps[0].Head() != (core.Cell{Row: 12, Col: 9}) {
		t.Errorf("first snapshot head = %v", snaps[0].Head())
	}
}

func TestRoundDeterminism(t *testing.T) {
	run := func() []Snapshot {
		var snaps []Snapshot
		r, err := NewRound(Options{
			Bounds:    board,
			Start:     core.Cell{Row: 12, Col: 8},
			Direction: core.DirRight,
			TickRate:  10,
			Obstacles: RandomSource{Count: 20, Direction: core.DirRight, Lane: 4},
			Bonuses:   []BonusKind{apple{}, pepper{}, ice{}},
			Seed:      12345,
			Sink:      SinkFunc(func(s Snapshot) { snaps = append(snaps, s) }),
		})
		if err != nil {
			t.Fatalf("NewRound failed: %v", err)
		}
		prev := r.Len()
		for i := range 200 {
			var in core.InputFrame
			switch i % 40 {
			case 10:
				in.Set(core.ActionDown)
			case 20:
				in.Set(core.ActionLeft)
			case 30:
				in.Set(core.ActionUp)
			case 39:
				in.Set(core.ActionRight)
			}
			res := r.Step(in)

			// Length never shrinks and grows by one only on a pickup
			if d := r.Len() - prev; !(d == 0 && !res.Picked) && !(d == 1 && res.Picked) {
				t.Fatalf("tick %d: length %d -> %d, picked %v", i, prev, r.Len(), res.Picked)
			}
			prev = r.Len()
		}
		return snaps
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Tick != b[i].Tick || a[i].Score != b[i].Score || a[i].Bonus != b[i].Bonus ||
			!slices.Equal(a[i].Segments, b[i].Segments) || !slices.Equal(a[i].Obstacles, b[i].Obstacles) {
			t.Fatalf("snapshot %d differs:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestNewRoundErrors(t *testing.T) {
	blocking := levels.Level{ID: "block", Obstacles: []core.Cell{{Row: 12, Col: 7}}}
	outside := levels.Level{ID: "big", Obstacles: []core.Cell{{Row: 40, Col: 0}}}

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{"start blocked", Options{Obstacles: LevelSource{Level: blocking}}, ErrStartBlocked},
		{"layout too big", Options{Obstacles: LevelSource{Level: outside}}, ErrLayoutOutOfBounds},
		{"start off board", Options{Start: core.Cell{Row: 50, Col: 1}}, nil},
		{"tiny board", Options{Bounds: core.Bounds{Rows: 1, Cols: 1}}, nil},
		{"two columns", Options{Bounds: core.Bounds{Rows: 24, Cols: 2}, Start: core.Cell{Row: 12, Col: 1}}, nil},
		{"diagonal", Options{Direction: core.Direction{DRow: 1, DCol: 1}}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := tc.opts
			if opts.Bounds == (core.Bounds{}) {
				opts.Bounds = board
			}
			if opts.Start == (core.Cell{}) {
				opts.Start = core.Cell{Row: 12, Col: 8}
			}
			if opts.Direction.IsZero() {
				opts.Direction = core.DirRight
			}
			opts.TickRate = 10
			opts.Bonuses = []BonusKind{apple{}}

			_, err := NewRound(opts)
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}
