package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestParseCoordinates(t *testing.T) {
	lvl := Parse("tiny", "#..\n.#.\n..##\n")

	if lvl.Rows != 3 || lvl.Cols != 4 {
		t.Errorf("expected 3x4 layout, got %dx%d", lvl.Rows, lvl.Cols)
	}

	expected := []core.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}
	if len(lvl.Obstacles) != len(expected) {
		t.Fatalf("expected %d obstacles, got %d", len(expected), len(lvl.Obstacles))
	}
	for i, c := range expected {
		if lvl.Obstacles[i] != c {
			t.Errorf("obstacle %d = %v, expected %v", i, lvl.Obstacles[i], c)
		}
	}
}

func TestParseCRLFAndEmpty(t *testing.T) {
	lvl := Parse("crlf", ".#\r\n#.\r\n")
	if lvl.Rows != 2 || lvl.Cols != 2 || len(lvl.Obstacles) != 2 {
		t.Errorf("unexpected CRLF parse result: %+v", lvl)
	}

	empty := Parse("empty", "")
	if empty.Rows != 0 || len(empty.Obstacles) != 0 {
		t.Errorf("empty layout should have no rows, got %+v", empty)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte("name: Corner\ndescription: one block\nlayout: |\n  #.\n  ..\n")

	lvl, err := ParseYAML("corner", data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.Name != "Corner" || lvl.Description != "one block" {
		t.Errorf("unexpected metadata: %+v", lvl)
	}
	if len(lvl.Obstacles) != 1 || lvl.Obstacles[0] != (core.Cell{}) {
		t.Errorf("expected one obstacle at origin, got %v", lvl.Obstacles)
	}

	if _, err := ParseYAML("blank", []byte("name: Blank\n")); err == nil {
		t.Error("expected error for missing layout")
	}
	if _, err := ParseYAML("bad", []byte("layout: [")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestBuiltinLevels(t *testing.T) {
	ids := BuiltinIDs()
	if len(ids) < 3 {
		t.Fatalf("expected at least 3 built-in levels, got %v", ids)
	}

	for _, id := range ids {
		lvl, err := Builtin(id)
		if err != nil {
			t.Fatalf("Builtin(%q) failed: %v", id, err)
		}
		if lvl.Rows != 24 || lvl.Cols != 32 {
			t.Errorf("%s: expected 24x32 layout, got %dx%d", id, lvl.Rows, lvl.Cols)
		}
		if len(lvl.Obstacles) == 0 {
			t.Errorf("%s: expected obstacles", id)
		}
		// Default start cells must stay free
		for _, o := range lvl.Obstacles {
			if o.Row == 12 && o.Col >= 4 && o.Col < 16 {
				t.Errorf("%s: obstacle %v blocks the start lane", id, o)
			}
		}
	}

	tunnels, err := Builtin("tunnels")
	if err != nil {
		t.Fatalf("Builtin(tunnels) failed: %v", err)
	}
	if tunnels.Name != "Tunnels" {
		t.Errorf("expected yaml name to be used, got %q", tunnels.Name)
	}

	if _, err := Builtin("nope"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	txtPath := filepath.Join(dir, "walls.txt")
	if err := os.WriteFile(txtPath, []byte("###\n...\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	lvl, err := LoadFile(txtPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if lvl.ID != "walls" || lvl.FilePath != txtPath || len(lvl.Obstacles) != 3 {
		t.Errorf("unexpected level: %+v", lvl)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}

	jsonPath := filepath.Join(dir, "level.json")
	if err := os.WriteFile(jsonPath, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(jsonPath); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestResolve(t *testing.T) {
	if _, err := Resolve("cross"); err != nil {
		t.Errorf("Resolve(cross) failed: %v", err)
	}

	dir := t.TempDir()
	p := filepath.Join(dir, "mine.yaml")
	if err := os.WriteFile(p, []byte("name: Mine\nlayout: |\n  .#\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	lvl, err := Resolve(p)
	if err != nil {
		t.Fatalf("Resolve(file) failed: %v", err)
	}
	if lvl.Name != "Mine" {
		t.Errorf("expected Mine, got %q", lvl.Name)
	}

	if _, err := Resolve(filepath.Join(dir, "absent.txt")); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
}
