// Package layout loads fixed SameGame boards from YAML files.
// This package depends on board but board does not depend on layout.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-samegame/internal/games/samegame/board"
)

// YAMLLayout represents the YAML structure of a layout file.
//
//	name: Twin towers
//	rows:
//	  - "A..B"
//	  - "A..B"
type YAMLLayout struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Rows        []string `yaml:"rows"`
}

// Layout is a parsed layout ready for play.
type Layout struct {
	Name        string
	Description string
	Grid        board.Grid
	FilePath    string
}

// Parse parses a YAML layout document.
func Parse(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if len(yl.Rows) == 0 {
		return Layout{}, fmt.Errorf("%w: layout has no rows", board.ErrInvalidLayout)
	}

	g, err := board.ParseRows(yl.Rows)
	if err != nil {
		return Layout{}, err
	}

	return Layout{
		Name:        yl.Name,
		Description: yl.Description,
		Grid:        g,
	}, nil
}

// Load reads and parses a layout file.
func Load(path string) (Layout, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return Layout{}, fmt.Errorf("layout %s: unsupported extension %q", path, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout %s: %w", path, err)
	}

	l, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing layout %s: %w", path, err)
	}
	if l.Name == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	l.FilePath = path
	return l, nil
}
