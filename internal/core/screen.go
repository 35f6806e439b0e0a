package core

import (
	"strings"
)

// ScreenCell is one character position of the screen buffer.
type ScreenCell struct {
	Rune  rune
	Color Color
}

var blank = ScreenCell{Rune: ' '}

// Screen is a character buffer the game draws a frame into.
// The platform turns it into terminal output; the game never touches the
// terminal itself. Writes outside the buffer are dropped.
type Screen struct {
	width  int
	height int
	cells  []ScreenCell // Row-major
}

// NewScreen creates a blank screen buffer.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions and blanks it.
// Every frame is drawn from scratch, so nothing is carried over.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	s.width, s.height = width, height
	if n := width * height; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]ScreenCell, n)
	}
	s.Clear()
}

// Clear blanks the whole buffer.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Put places a colored rune at (x, y).
func (s *Screen) Put(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = ScreenCell{Rune: r, Color: c}
	}
}

// Cell returns the cell at (x, y), or a blank cell outside the buffer.
func (s *Screen) Cell(x, y int) ScreenCell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// Text writes a string left to right from (x, y), clipped at the edges.
func (s *Screen) Text(x, y int, text string, c Color) {
	for _, r := range text {
		s.Put(x, y, r, c)
		x++
	}
}

// TextCentered writes a string centered on row y.
func (s *Screen) TextCentered(y int, text string, c Color) {
	s.Text((s.width-len([]rune(text)))/2, y, text, c)
}

// HLine repeats r for n cells to the right of (x, y).
func (s *Screen) HLine(x, y, n int, r rune, c Color) {
	for i := range max(n, 0) {
		s.Put(x+i, y, r, c)
	}
}

// Box draws a single-line frame along the edge of r.
func (s *Screen) Box(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	s.HLine(r.X+1, r.Y, r.W-2, '─', c)
	s.HLine(r.X+1, bottom, r.W-2, '─', c)
	for y := r.Y + 1; y < bottom; y++ {
		s.Put(r.X, y, '│', c)
		s.Put(right, y, '│', c)
	}
	s.Put(r.X, r.Y, '┌', c)
	s.Put(right, r.Y, '┐', c)
	s.Put(r.X, bottom, '└', c)
	s.Put(right, bottom, '┘', c)
}

// Row returns row y as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the buffer as plain text, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
