package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/levels"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [id|path]",
	Short: "List built-in obstacle levels or preview one",
	Long: `Without arguments, lists the built-in obstacle levels and bonus kinds.
With a level ID or file path, prints the layout on the board.

Examples:
  snake levels
  snake levels cross
  snake levels ./my-level.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return showLevel(args[0])
	}

	ids := levels.BuiltinIDs()
	if len(ids) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, id := range ids {
		maxIDLen = max(maxIDLen, len(id))
	}

	fmt.Println("Built-in levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Cells", "Name")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "-----", "----")

	for _, id := range ids {
		lvl, err := levels.Builtin(id)
		if err != nil {
			return err
		}
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, id, len(lvl.Obstacles), lvl.Name)
	}

	fmt.Println()
	fmt.Printf("Bonus kinds: %s\n", strings.Join(snake.BonusNames(), ", "))
	fmt.Println()
	fmt.Println("Run 'snake play --level <id>' to play on a level.")
	return nil
}

// showLevel prints a level's obstacles on an otherwise empty grid.
func showLevel(ref string) error {
	lvl, err := levels.Resolve(ref)
	if err != nil {
		return err
	}

	blocked := make(map[core.Cell]bool, len(lvl.Obstacles))
	for _, c := range lvl.Obstacles {
		blocked[c] = true
	}

	fmt.Printf("%s (%d obstacle cells)\n", lvl.Name, len(lvl.Obstacles))
	if lvl.Description != "" {
		fmt.Println(lvl.Description)
	}
	fmt.Println()

	var b strings.Builder
	for row := range lvl.Rows {
		for col := range lvl.Cols {
			if blocked[core.Cell{Row: row, Col: col}] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
	return nil
}
