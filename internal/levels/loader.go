// Package levels loads obstacle layouts for the snake board.
// A layout is a text grid where '#' marks an obstacle cell at (row, column);
// any other character is free space.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed builtin/*.txt builtin/*.yaml
var builtinFS embed.FS

// ErrUnknownLevel is returned when a level reference matches neither a
// built-in level nor an existing file.
var ErrUnknownLevel = errors.New("levels: unknown level")

// ObstacleRune marks an obstacle cell in a layout.
const ObstacleRune = '#'

// Level is a parsed obstacle layout.
type Level struct {
	ID          string
	Name        string
	Description string
	Rows        int // Number of layout lines
	Cols        int // Length of the longest line
	Obstacles   []core.Cell
	FilePath    string // Empty for built-in levels
}

// yamlLevel is the on-disk structure of a .yaml level file.
type yamlLevel struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Layout      string `yaml:"layout"`
}

// Parse builds a level from a text grid.
func Parse(id, text string) Level {
	lvl := Level{ID: id, Name: id}

	lines := strings.Split(strings.TrimRight(text, "\r\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		lines = nil
	}
	lvl.Rows = len(lines)

	for row, line := range lines {
		line = strings.TrimRight(line, "\r")
		col := 0
		for _, ch := range line {
			if ch == ObstacleRune {
				lvl.Obstacles = append(lvl.Obstacles, core.Cell{Row: row, Col: col})
			}
			col++
		}
		if col > lvl.Cols {
			lvl.Cols = col
		}
	}
	return lvl
}

// ParseYAML builds a level from a YAML document with name, description and layout.
func ParseYAML(id string, data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}
	if strings.TrimSpace(yl.Layout) == "" {
		return Level{}, fmt.Errorf("levels: %s has no layout", id)
	}

	lvl := Parse(id, yl.Layout)
	if yl.Name != "" {
		lvl.Name = yl.Name
	}
	lvl.Description = yl.Description
	return lvl, nil
}

// LoadFile loads a level from a .txt or .yaml file on disk.
func LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", p, err)
	}

	id := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	lvl, err := parseByExtension(id, data, strings.ToLower(filepath.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", p, err)
	}
	lvl.FilePath = p
	return lvl, nil
}

// Builtin returns the embedded level with the given ID.
func Builtin(id string) (Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading built-in levels: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		ext := path.Ext(name)
		if strings.TrimSuffix(name, ext) != id {
			continue
		}
		data, err := builtinFS.ReadFile(path.Join("builtin", name))
		if err != nil {
			return Level{}, fmt.Errorf("levels: reading built-in level %s: %w", id, err)
		}
		return parseByExtension(id, data, ext)
	}

	return Level{}, fmt.Errorf("%w: %s", ErrUnknownLevel, id)
}

// BuiltinIDs returns the IDs of all embedded levels, sorted.
func BuiltinIDs() []string {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(ids)
	return ids
}

// Resolve loads a level by reference: a built-in ID first, then a file path.
func Resolve(ref string) (Level, error) {
	if lvl, err := Builtin(ref); err == nil {
		return lvl, nil
	} else if !errors.Is(err, ErrUnknownLevel) {
		return Level{}, err
	}

	if _, err := os.Stat(ref); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Level{}, fmt.Errorf("%w: %s", ErrUnknownLevel, ref)
		}
		return Level{}, fmt.Errorf("levels: %w", err)
	}
	return LoadFile(ref)
}

// parseByExtension routes to the correct parser.
func parseByExtension(id string, data []byte, ext string) (Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(id, data)
	case ".txt", "":
		return Parse(id, string(data)), nil
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
