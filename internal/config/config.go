// Package config provides YAML-based configuration loading and difficulty
// tiers for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config contains all configuration for the snake game.
type Config struct {
	Board        BoardConfig                     `yaml:"board"`
	Snake        SnakeConfig                     `yaml:"snake"`
	Highscores   HighscoreConfig                 `yaml:"highscores"`
	Bonuses      []string                        `yaml:"bonuses"`
	Difficulties map[Difficulty]DifficultyConfig `yaml:"difficulties"`
}

// BoardConfig defines the grid size in cells.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SnakeConfig defines the snake's starting position and heading.
type SnakeConfig struct {
	StartRow  int    `yaml:"start_row"`
	StartCol  int    `yaml:"start_col"`
	Direction string `yaml:"direction"`
}

// HighscoreConfig defines the highscore table size.
type HighscoreConfig struct {
	Capacity int `yaml:"capacity"`
}

// DifficultyConfig defines the pacing and obstacles of one difficulty tier.
type DifficultyConfig struct {
	TickRate  int            `yaml:"tick_rate"` // Ticks per second
	Obstacles ObstacleConfig `yaml:"obstacles"`
}

// ObstacleConfig selects the obstacle source of a tier.
// Level takes precedence over Random when both are set.
type ObstacleConfig struct {
	Level  string `yaml:"level,omitempty"`  // Built-in level ID or path to a level file
	Random int    `yaml:"random,omitempty"` // Number of randomly placed obstacle cells
}

// MinBoardSize is the smallest number of rows or columns a board may have.
// On narrower boards a grown tail wraps back onto the head.
const MinBoardSize = 3

// Bounds returns the board size as core.Bounds.
func (c Config) Bounds() core.Bounds {
	return core.Bounds{Rows: c.Board.Rows, Cols: c.Board.Cols}
}

// Start returns the snake's starting head cell.
// A zero start cell means the default position rows/2, cols/4.
func (c Config) Start() core.Cell {
	if c.Snake.StartRow == 0 && c.Snake.StartCol == 0 {
		return core.Cell{Row: c.Board.Rows / 2, Col: c.Board.Cols / 4}
	}
	return core.Cell{Row: c.Snake.StartRow, Col: c.Snake.StartCol}
}

// StartDirection returns the snake's initial heading.
func (c Config) StartDirection() (core.Direction, error) {
	if c.Snake.Direction == "" {
		return core.DirRight, nil
	}
	return core.ParseDirection(c.Snake.Direction)
}

// Tier returns the configuration of a difficulty, falling back to the
// built-in defaults for tiers missing from the file.
func (c Config) Tier(d Difficulty) DifficultyConfig {
	tier, ok := c.Difficulties[d]
	if !ok {
		tier = DefaultConfig().Difficulties[d]
	}
	if tier.TickRate <= 0 {
		tier.TickRate = d.TickRate()
	}
	return tier
}

// Validate checks that the configuration describes a playable board.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Rows < MinBoardSize || c.Board.Cols < MinBoardSize {
		errs = append(errs, fmt.Errorf("board must be at least %dx%d, got %dx%d",
			MinBoardSize, MinBoardSize, c.Board.Rows, c.Board.Cols))
	}
	if !c.Bounds().Contains(c.Start()) {
		errs = append(errs, fmt.Errorf("start cell %v is off the board", c.Start()))
	}
	if _, err := c.StartDirection(); err != nil {
		errs = append(errs, err)
	}
	if c.Highscores.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("highscores.capacity must be positive, got %d", c.Highscores.Capacity))
	}
	if len(c.Bonuses) == 0 {
		errs = append(errs, errors.New("at least one bonus kind is required"))
	}
	for d, tier := range c.Difficulties {
		if !d.Valid() {
			errs = append(errs, fmt.Errorf("unknown difficulty %q", d))
		}
		if tier.Obstacles.Random < 0 {
			errs = append(errs, fmt.Errorf("%s: random obstacle count must not be negative", d))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
