// snake is a grid snake game for the terminal.
//
// Usage:
//
//	snake                 - Start the menu (same as "snake menu")
//	snake play            - Start a round directly
//	snake menu            - Menu with name entry, settings and highscores
//	snake scores          - Print the highscore table
//	snake levels          - List built-in obstacle levels
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--db <path>          - Set database path (default: ~/.snake/scores.db)
//	--config <path>      - Use a custom snake.yaml
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log destination (default: ~/.snake/snake.log for the game, stderr otherwise)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a grid snake game in your terminal",
	Long: `Snake is a terminal snake game on a wrapping 24x32 board.
Eat bonuses to grow, avoid your own tail and the obstacles.

Available commands:
  play     - Start a round directly
  menu     - Interactive menu (default)
  scores   - Show the highscore table
  levels   - List built-in obstacle levels

Examples:
  snake
  snake play --difficulty hard --name ada
  snake play --level ./my-level.txt
  snake scores`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.snake/snake.log while playing)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLogger creates the application logger. The full-screen game owns the
// terminal, so interactive commands log to a file unless one is given.
func newLogger(interactive bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	path := flagLogFile
	if path == "" && interactive {
		path = "~/.snake/snake.log"
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if path != "" {
		path, err = expandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads snake.yaml following the usual search order.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded", "board", fmt.Sprintf("%dx%d", cfg.Board.Rows, cfg.Board.Cols), "custom", flagConfig)
	return cfg, nil
}

// openScores opens the highscore database. If that fails the game keeps
// working with an in-memory table for this run.
func openScores(cfg config.Config, logger *log.Logger) storage.Scores {
	store, err := storage.Open(flagDBPath, cfg.Highscores.Capacity)
	if err == nil {
		return store
	}

	logger.Warn("could not open scores database, scores will not be kept", "path", flagDBPath, "error", err)
	table, tErr := storage.NewTable(cfg.Highscores.Capacity)
	if tErr != nil {
		// Capacity was validated with the config; the default always works.
		table, _ = storage.NewTable(storage.DefaultCapacity)
	}
	return table
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func expandHome(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}
