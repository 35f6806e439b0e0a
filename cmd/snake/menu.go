package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with the interactive menu",
	Long: `Start snake in interactive menu mode.

Type your name at the top, then pick Play, Highscores or Settings.
After a round you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Tab          - Edit name
  Enter        - Select
  Q            - Quit

Examples:
  snake menu
  snake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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
	settings := tui.Settings{Difficulty: config.DifficultyMedium}
	player := ""

	for {
		best, err := scores.HighScore()
		if err != nil {
			logger.Warn("could not read high score", "error", err)
		}

		result, err := tui.RunMenu(player, settings.Difficulty, best, width, height)
		if err != nil {
			return err
		}
		player = result.Player
		width, height = result.ScreenW, result.ScreenH

		switch result.Choice {
		case tui.MenuPlay:
			err := tui.Run(tui.Session{
				Config:     cfg,
				Difficulty: settings.Difficulty,
				Level:      settings.Level,
				Player:     player,
				Seed:       flagSeed,
				Scores:     scores,
				Logger:     logger,
				ScreenW:    width,
				ScreenH:    height,
			})
			if err != nil {
				// A broken level file should not end the session
				logger.Error("round failed", "error", err)
			}

		case tui.MenuHighscores:
			goBack, err := tui.RunScoreboard(scores, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.MenuSettings:
			selected, quit, err := tui.RunSettings(cfg, settings, width, height)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			if selected != nil {
				settings = *selected
				logger.Info("settings changed", "difficulty", settings.Difficulty, "level", settings.Level)
			}

		default:
			return nil
		}
	}
}
