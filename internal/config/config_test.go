package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults are invalid: %v", err)
	}

	def := DefaultConfig()
	if cfg.Board != def.Board || cfg.Snake != def.Snake || cfg.Highscores != def.Highscores {
		t.Errorf("embedded defaults differ from DefaultConfig: %+v vs %+v", cfg, def)
	}
	for _, d := range Difficulties() {
		if cfg.Tier(d) != def.Tier(d) {
			t.Errorf("%s tier differs: %+v vs %+v", d, cfg.Tier(d), def.Tier(d))
		}
	}
}

func TestDefaultTickRates(t *testing.T) {
	cfg := DefaultConfig()
	expected := map[Difficulty]int{
		DifficultyEasy:   5,
		DifficultyMedium: 10,
		DifficultyHard:   15,
	}
	for d, rate := range expected {
		if cfg.Tier(d).TickRate != rate {
			t.Errorf("%s tick rate = %d, expected %d", d, cfg.Tier(d).TickRate, rate)
		}
		if d.TickRate() != rate {
			t.Errorf("%s.TickRate() = %d, expected %d", d, d.TickRate(), rate)
		}
	}
}

func TestStartDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Start() != (core.Cell{Row: 12, Col: 8}) {
		t.Errorf("Start() = %v, expected (12,8)", cfg.Start())
	}

	cfg.Snake.StartRow, cfg.Snake.StartCol = 0, 0
	cfg.Board = BoardConfig{Rows: 10, Cols: 20}
	if cfg.Start() != (core.Cell{Row: 5, Col: 5}) {
		t.Errorf("zero start should derive from board, got %v", cfg.Start())
	}

	dir, err := cfg.StartDirection()
	if err != nil || dir != core.DirRight {
		t.Errorf("StartDirection() = %v, %v", dir, err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "snake.yaml")
	data := []byte(`
board:
  rows: 10
  cols: 12
difficulties:
  hard:
    tick_rate: 20
    obstacles:
      random: 3
`)
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Board.Rows != 10 || cfg.Board.Cols != 12 {
		t.Errorf("board not loaded: %+v", cfg.Board)
	}
	// The start cell follows the custom board
	if cfg.Start() != (core.Cell{Row: 5, Col: 3}) {
		t.Errorf("Start() = %v, expected (5,3) on a 10x12 board", cfg.Start())
	}
	// Unset fields keep defaults
	if cfg.Highscores.Capacity != 10 {
		t.Errorf("capacity should default to 10, got %d", cfg.Highscores.Capacity)
	}
	hard := cfg.Tier(DifficultyHard)
	if hard.TickRate != 20 || hard.Obstacles.Random != 3 {
		t.Errorf("hard tier not loaded: %+v", hard)
	}
	// Tiers missing from the file fall back to defaults
	if cfg.Tier(DifficultyMedium).Obstacles.Level != "cross" {
		t.Errorf("medium tier should fall back to default, got %+v", cfg.Tier(DifficultyMedium))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	p := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(p, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(p); err == nil {
		t.Error("expected error for malformed config")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  rows: 1\n  cols: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error for 1x1 board")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"start off board", func(c *Config) { c.Snake.StartRow = 40 }},
		{"two columns", func(c *Config) { c.Board.Cols = 2 }},
		{"two rows", func(c *Config) { c.Board.Rows = 2 }},
		{"bad direction", func(c *Config) { c.Snake.Direction = "diagonal" }},
		{"zero capacity", func(c *Config) { c.Highscores.Capacity = 0 }},
		{"no bonuses", func(c *Config) { c.Bonuses = nil }},
		{"unknown tier", func(c *Config) { c.Difficulties["insane"] = DifficultyConfig{} }},
		{"negative random", func(c *Config) {
			c.Difficulties[DifficultyEasy] = DifficultyConfig{Obstacles: ObstacleConfig{Random: -1}}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected Difficulty
		wantErr  bool
	}{
		{"easy", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{"normal", DifficultyMedium, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		d, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if d != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, d, tc.expected)
		}
	}

	if DifficultyMedium.Title() != "Medium" {
		t.Errorf("Title() = %q", DifficultyMedium.Title())
	}
}
