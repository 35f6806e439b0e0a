package snake

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// BonusKind is a consumable variant. Apply runs when the head reaches the bonus.
type BonusKind interface {
	Name() string
	Color() core.Color
	Symbol() rune
	Apply(r *Round)
}

// Bonus is the single active item on the board.
type Bonus struct {
	Pos  core.Cell
	Kind BonusKind
}

// apple grows the snake by one segment.
type apple struct{}

func (apple) Name() string      { return "apple" }
func (apple) Color() core.Color { return core.ColorBrightRed }
func (apple) Symbol() rune      { return '●' }
func (apple) Apply(r *Round)    { r.GrowSnake() }

// pepper grows the snake and speeds the round up by one tick per second.
type pepper struct{}

// pepperCap is how far above the base rate peppers can push the round.
const pepperCap = 5

func (pepper) Name() string      { return "pepper" }
func (pepper) Color() core.Color { return core.ColorOrange }
func (pepper) Symbol() rune      { return '♦' }

func (pepper) Apply(r *Round) {
	r.GrowSnake()
	r.SetTickRate(min(r.TickRate()+1, r.BaseTickRate()+pepperCap))
}

// ice grows the snake and cools the pace back to the difficulty's base rate.
type ice struct{}

func (ice) Name() string      { return "ice" }
func (ice) Color() core.Color { return core.ColorBrightCyan }
func (ice) Symbol() rune      { return '✶' }

func (ice) Apply(r *Round) {
	r.GrowSnake()
	r.SetTickRate(r.BaseTickRate())
}

var (
	kinds   = make(map[string]BonusKind)
	kindsMu sync.RWMutex
)

func init() {
	RegisterBonus(apple{})
	RegisterBonus(pepper{})
	RegisterBonus(ice{})
}

// RegisterBonus adds a bonus kind to the registry.
// Panics if a kind with the same name is already registered.
func RegisterBonus(k BonusKind) {
	kindsMu.Lock()
	defer kindsMu.Unlock()

	if _, exists := kinds[k.Name()]; exists {
		panic(fmt.Sprintf("snake: bonus kind %q already registered", k.Name()))
	}
	kinds[k.Name()] = k
}

// LookupBonus returns the registered kinds with the given names, in order.
func LookupBonus(names ...string) ([]BonusKind, error) {
	kindsMu.RLock()
	defer kindsMu.RUnlock()

	result := make([]BonusKind, 0, len(names))
	for _, n := range names {
		k, ok := kinds[n]
		if !ok {
			return nil, fmt.Errorf("snake: unknown bonus kind %q", n)
		}
		result = append(result, k)
	}
	return result, nil
}

// BonusNames returns the names of all registered kinds, sorted.
func BonusNames() []string {
	kindsMu.RLock()
	defer kindsMu.RUnlock()

	names := make([]string, 0, len(kinds))
	for n := range kinds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// maxSpawnAttempts bounds rejection sampling before the spawner falls back
// to enumerating the free cells.
const maxSpawnAttempts = 64

// Spawner places bonuses on free cells.
type Spawner struct {
	bounds core.Bounds
	kinds  []BonusKind
	rng    *rand.Rand
}

// NewSpawner creates a spawner choosing uniformly among kinds.
func NewSpawner(bounds core.Bounds, kinds []BonusKind, rng *rand.Rand) *Spawner {
	return &Spawner{bounds: bounds, kinds: kinds, rng: rng}
}

// Spawn returns a new bonus on a cell not occupied by the snake or an obstacle.
// It returns false when the board has no free cell left.
func (s *Spawner) Spawn(sn *Snake, obstacles ObstacleSet) (Bonus, bool) {
	if len(s.kinds) == 0 {
		return Bonus{}, false
	}
	kind := s.kinds[s.rng.Intn(len(s.kinds))]

	free := func(c core.Cell) bool {
		return !sn.Occupies(c) && !obstacles.Contains(c)
	}

	for range maxSpawnAttempts {
		c := core.Cell{Row: s.rng.Intn(s.bounds.Rows), Col: s.rng.Intn(s.bounds.Cols)}
		if free(c) {
			return Bonus{Pos: c, Kind: kind}, true
		}
	}

	// The board is crowded: pick among the cells that are actually free.
	var candidates []core.Cell
	for _, c := range s.bounds.Cells() {
		if free(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return Bonus{}, false
	}
	return Bonus{Pos: candidates[s.rng.Intn(len(candidates))], Kind: kind}, true
}
