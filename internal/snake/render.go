package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellWidth is the number of screen columns per board cell. Terminal cells
// are roughly twice as tall as wide, so two columns keep the board square.
const cellWidth = 2

// hudHeight is the number of rows above the board (status line and separator).
const hudHeight = 2

// View carries the labels drawn around the board that the round does not own.
type View struct {
	Player     string
	Best       int
	Difficulty string
}

// MinScreenSize returns the smallest screen that fits the board and HUD.
func MinScreenSize(b core.Bounds) (w, h int) {
	return b.Cols*cellWidth + 2, b.Rows + 2 + hudHeight
}

// Draw renders a snapshot onto dst.
func Draw(dst *core.Screen, snap Snapshot, v View) {
	dst.Clear()
	drawHUD(dst, snap, v)

	minW, minH := MinScreenSize(snap.Bounds)
	if dst.Width() < minW || dst.Height() < minH {
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	offX := (dst.Width() - minW) / 2
	offY := hudHeight
	dst.Box(core.NewRect(offX, offY, minW, snap.Bounds.Rows+2), core.ColorGray)

	// Board cell to screen column/row
	put := func(c core.Cell, r rune, color core.Color) {
		dst.Put(offX+1+c.Col*cellWidth, offY+1+c.Row, r, color)
	}

	for _, c := range snap.Obstacles {
		dst.HLine(offX+1+c.Col*cellWidth, offY+1+c.Row, cellWidth, '█', core.ColorGray)
	}

	if snap.Bonus.Active {
		put(snap.Bonus.Pos, snap.Bonus.Symbol, snap.Bonus.Color)
	}

	// Tail first so the head wins when it overlaps the body on the fatal tick.
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		if i == 0 {
			put(snap.Segments[i], 'O', core.ColorBrightGreen)
		} else {
			put(snap.Segments[i], 'o', core.ColorGreen)
		}
	}

	switch snap.State {
	case StateGameOver:
		drawOverlay(dst, fmt.Sprintf("Game Over: %s", snap.Cause), fmt.Sprintf("Score %d  R restart  Q quit", snap.Score))
	case StatePaused:
		drawOverlay(dst, "Paused", "Press P to continue")
	}
}

func drawHUD(dst *core.Screen, snap Snapshot, v View) {
	hud := fmt.Sprintf(" Snake  %s  Score: %d  Best: %d  %s  %d tps",
		v.Player, snap.Score, max(v.Best, snap.Score), v.Difficulty, snap.TickRate)
	dst.Text(0, 0, hud, core.ColorBrightWhite)

	// The obstacle label sits on the separator so it never covers the status line.
	dst.HLine(0, 1, dst.Width(), '─', core.ColorGray)
	if snap.Level != "" {
		label := " " + snap.Level + " "
		dst.Text(dst.Width()-len([]rune(label))-2, 1, label, core.ColorGray)
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		dst.HLine(boxX+1, y, boxW-2, ' ', core.ColorDefault)
	}
	dst.Box(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)
	dst.TextCentered(boxY+1, line1, core.ColorBrightYellow)
	dst.TextCentered(boxY+3, line2, core.ColorDefault)
}
