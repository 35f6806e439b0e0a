package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Rows: 24,
			Cols: 32,
		},
		Snake: SnakeConfig{
			Direction: "right", // Start cell derives from the board: (12,8) on 24x32
		},
		Highscores: HighscoreConfig{
			Capacity: 10,
		},
		Bonuses: []string{"apple", "pepper", "ice"},
		Difficulties: map[Difficulty]DifficultyConfig{
			DifficultyEasy: {
				TickRate:  5,
				Obstacles: ObstacleConfig{Random: 8},
			},
			DifficultyMedium: {
				TickRate:  10,
				Obstacles: ObstacleConfig{Level: "cross"},
			},
			DifficultyHard: {
				TickRate:  15,
				Obstacles: ObstacleConfig{Level: "chambers"},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
