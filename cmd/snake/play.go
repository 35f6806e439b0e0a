package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagDifficulty string
	flagName       string
	flagLevel      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a round directly",
	Long: `Start a snake round without the menu.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Space/Esc       - Pause
  R                 - Restart after game over
  Q                 - Quit
  Ctrl+S            - Save a screenshot to ~/.snake/screenshots

Examples:
  snake play
  snake play --difficulty easy --name ada
  snake play --level tunnels
  snake play --level ./my-level.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", string(config.DifficultyMedium), "Difficulty: easy, medium, hard")
	playCmd.Flags().StringVarP(&flagName, "name", "n", tui.DefaultPlayer, "Name recorded with your scores")
	playCmd.Flags().StringVarP(&flagLevel, "level", "l", "", "Built-in level ID or path to a level file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	scores := openScores(cfg, logger)
	defer scores.Close()

	width, height := terminalSize()
	return tui.Run(tui.Session{
		Config:     cfg,
		Difficulty: difficulty,
		Level:      flagLevel,
		Player:     flagName,
		Seed:       flagSeed,
		Scores:     scores,
		Logger:     logger,
		ScreenW:    width,
		ScreenH:    height,
	})
}
