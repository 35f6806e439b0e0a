package core

import (
	"strings"
	"testing"
)

func TestScreenBlankOnCreate(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenPutClips(t *testing.T) {
	s := NewScreen(4, 4)

	tests := []struct {
		x, y int
		in   bool
	}{
		{0, 0, true},
		{3, 3, true},
		{-1, 0, false},
		{4, 0, false},
		{0, -1, false},
		{0, 4, false},
	}

	for _, tc := range tests {
		s.Put(tc.x, tc.y, 'X', ColorRed)
		got := s.Cell(tc.x, tc.y)
		if tc.in && (got.Rune != 'X' || got.Color != ColorRed) {
			t.Errorf("Cell(%d, %d) = %+v, expected red X", tc.x, tc.y, got)
		}
		if !tc.in && got != blank {
			t.Errorf("Cell(%d, %d) outside the buffer = %+v, expected blank", tc.x, tc.y, got)
		}
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(10, 2)
	s.Text(7, 0, "Score", ColorYellow)
	s.TextCentered(1, "ab", ColorDefault)

	if got := s.Row(0); got != "       Sco" {
		t.Errorf("row 0 = %q, expected clipped text", got)
	}
	if got := s.Cell(7, 0).Color; got != ColorYellow {
		t.Errorf("text color = %v, expected yellow", got)
	}
	if got := s.Row(1); got != "    ab    " {
		t.Errorf("row 1 = %q, expected centered text", got)
	}
}

func TestScreenBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.Box(NewRect(1, 0, 4, 3), ColorGray)

	expected := []string{
		" ┌──┐ ",
		" │  │ ",
		" └──┘ ",
		"      ",
	}
	if got := s.String(); got != strings.Join(expected, "\n") {
		t.Errorf("box:\n%s", got)
	}
	if got := s.Cell(1, 0).Color; got != ColorGray {
		t.Errorf("corner color = %v, expected gray", got)
	}

	// Too small to have an inside
	s.Clear()
	s.Box(NewRect(0, 0, 1, 3), ColorGray)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("degenerate box should draw nothing")
	}
}

func TestScreenResizeBlanks(t *testing.T) {
	s := NewScreen(3, 3)
	s.Put(1, 1, '#', ColorGray)

	s.Resize(5, 2)
	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 5x2", s.Width(), s.Height())
	}
	if got := s.Cell(1, 1); got != blank {
		t.Errorf("cell after resize = %+v, expected blank", got)
	}

	s.Resize(-1, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should give an empty buffer, got %q", s.String())
	}
}

func TestScreenRowOutside(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blank row", got)
	}
}
