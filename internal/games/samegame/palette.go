package samegame

import (
	"github.com/vovakirdan/tui-samegame/internal/core"
	"github.com/vovakirdan/tui-samegame/internal/games/samegame/board"
)

// Palette maps board colors to terminal colors by index.
type Palette []core.Color

// ColorOf returns the terminal color for c. Colors beyond the palette wrap
// around; empty cells are ColorDefault.
func (p Palette) ColorOf(c board.Cell) core.Color {
	if c.IsEmpty() || len(p) == 0 {
		return core.ColorDefault
	}
	return p[int(c)%len(p)]
}
