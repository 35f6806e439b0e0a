package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/levels"
)

// randomLane is how many cells ahead of the starting head random obstacles
// leave free.
const randomLane = 4

// OptionsFor builds round options from the configuration and a difficulty.
// A non-empty level overrides the tier's obstacle setting.
func OptionsFor(cfg config.Config, d config.Difficulty, level string, seed int64) (Options, error) {
	dir, err := cfg.StartDirection()
	if err != nil {
		return Options{}, fmt.Errorf("snake: %w", err)
	}

	kinds, err := LookupBonus(cfg.Bonuses...)
	if err != nil {
		return Options{}, err
	}

	tier := cfg.Tier(d)
	if level == "" {
		level = tier.Obstacles.Level
	}

	var src ObstacleSource = NoObstacles{}
	switch {
	case level != "":
		lvl, err := levels.Resolve(level)
		if err != nil {
			return Options{}, fmt.Errorf("snake: %w", err)
		}
		src = LevelSource{Level: lvl}
	case tier.Obstacles.Random > 0:
		src = RandomSource{Count: tier.Obstacles.Random, Direction: dir, Lane: randomLane}
	}

	return Options{
		Bounds:    cfg.Bounds(),
		Start:     cfg.Start(),
		Direction: dir,
		TickRate:  tier.TickRate,
		Obstacles: src,
		Bonuses:   kinds,
		Seed:      seed,
	}, nil
}
