package config

import (
	_ "embed"
)

//go:embed defaults/samegame.yaml
var defaultSameGameYAML []byte

// Default returns the hard-coded configuration, used when the embedded
// YAML cannot be parsed.
func Default() SameGameConfig {
	return SameGameConfig{
		Board: BoardConfig{
			Width:  15,
			Height: 10,
			Colors: 3,
		},
		Display: DisplayConfig{
			CellWidth:  4,
			CellHeight: 2,
			Palette: []string{
				"red", "green", "blue", "yellow", "magenta",
				"cyan", "orange", "bright_red", "bright_green", "bright_blue",
			},
		},
		Runtime: RuntimeConfig{
			TickRate: 30,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultSameGameYAML
}
