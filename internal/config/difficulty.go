package config

import (
	"fmt"
	"strings"
)

// Difficulty represents a named difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the tiers from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a user-supplied name into a Difficulty.
// Matching is case-insensitive; "normal" is accepted for medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// TickRate returns the default simulation rate of the tier in ticks per second.
func (d Difficulty) TickRate() int {
	switch d {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return 15
	default:
		return 10
	}
}

// Title returns the display name of the tier.
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}
