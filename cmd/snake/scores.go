package main

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagClear   bool
	flagRoundID string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the highscore table",
	Long: `Display the highscore table, best first.

Examples:
  snake scores
  snake scores --db ./scores.db
  snake scores --clear
  snake scores --round 0b6c7c4e-...   (round id from the log)`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Remove every entry from the table")
	scoresCmd.Flags().StringVar(&flagRoundID, "round", "", "Show the entry saved for one round")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath, cfg.Highscores.Capacity)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("Highscore table cleared.")
		return nil
	}

	if flagRoundID != "" {
		return showRound(store, flagRoundID)
	}

	entries, err := store.Top(0)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %-10s  %s\n", "Rank", "Name", "Score", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-10s  %s\n", "----", "----", "-----", "----------", "----")

	for i, e := range entries {
		fmt.Printf("  %-4d  %-16s  %-6d  %-10s  %s\n",
			i+1, e.Name, e.Score, e.Difficulty, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("High Score: %d\n", entries[0].Score)
	return nil
}

// showRound prints the entry a round left in the table, if it made it.
func showRound(store *storage.Store, roundID string) error {
	e, err := store.ByRound(roundID)
	if errors.Is(err, sql.ErrNoRows) {
		fmt.Printf("Round %s is not in the highscore table.\n", roundID)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Round %s\n\n", e.RoundID)
	fmt.Printf("  Name:        %s\n", e.Name)
	fmt.Printf("  Score:       %d\n", e.Score)
	fmt.Printf("  Difficulty:  %s\n", e.Difficulty)
	fmt.Printf("  Date:        %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"))
	return nil
}
