// Package config provides YAML-based configuration loading for SameGame.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-samegame/internal/core"
	"github.com/vovakirdan/tui-samegame/internal/games/samegame/board"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// SameGameConfig contains all configuration for the game.
type SameGameConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Runtime RuntimeConfig `yaml:"runtime"`
}

// BoardConfig defines the dealt board.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Colors int `yaml:"colors"`
}

// DisplayConfig defines how tiles are drawn in the terminal.
type DisplayConfig struct {
	CellWidth  int      `yaml:"cell_width"`
	CellHeight int      `yaml:"cell_height"`
	Palette    []string `yaml:"palette"` // color names, see core.ParseColor
}

// RuntimeConfig defines platform timing.
type RuntimeConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// Validate checks that the configuration can deal and draw a board.
func (c SameGameConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 ||
		c.Board.Width > board.MaxDimension || c.Board.Height > board.MaxDimension {
		return fmt.Errorf("%w: board size %dx%d (want 1-%d per side)", ErrInvalidConfig, c.Board.Width, c.Board.Height, board.MaxDimension)
	}
	if c.Board.Colors < 1 || c.Board.Colors > board.MaxPalette {
		return fmt.Errorf("%w: board.colors %d (want 1-%d)", ErrInvalidConfig, c.Board.Colors, board.MaxPalette)
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size %dx%d", ErrInvalidConfig, c.Display.CellWidth, c.Display.CellHeight)
	}
	if len(c.Display.Palette) < c.Board.Colors {
		return fmt.Errorf("%w: palette has %d colors, board needs %d", ErrInvalidConfig, len(c.Display.Palette), c.Board.Colors)
	}
	if _, err := c.Display.Colors(); err != nil {
		return err
	}
	if c.Runtime.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate %d", ErrInvalidConfig, c.Runtime.TickRate)
	}
	return nil
}

// Colors resolves the palette names.
func (d DisplayConfig) Colors() ([]core.Color, error) {
	colors := make([]core.Color, len(d.Palette))
	for i, name := range d.Palette {
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("%w: palette[%d] unknown color %q", ErrInvalidConfig, i, name)
		}
		colors[i] = c
	}
	return colors, nil
}
