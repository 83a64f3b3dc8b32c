package samegame

import (
	"github.com/vovakirdan/tui-samegame/internal/core"
	"github.com/vovakirdan/tui-samegame/internal/games/samegame/board"
)

const (
	hudHeight    = 2 // title and stats rows above the board
	footerHeight = 1 // hint row below the board
)

// viewport maps board cells to screen cells.
type viewport struct {
	frame core.Rect // board border
	inner core.Rect // tile area inside the border
	cellW int
	cellH int
}

// fitViewport places a cols x rows board on the screen, shrinking cells
// below the configured size when needed. It reports tooSmall when even
// 1x1 cells do not fit.
func fitViewport(cols, rows, cellW, cellH, screenW, screenH int) (viewport, bool) {
	cw, ch := core.Max(1, cellW), core.Max(1, cellH)
	fits := func(cw, ch int) bool {
		return cols*cw+2 <= screenW && rows*ch+2+hudHeight+footerHeight <= screenH
	}

	for !fits(cw, ch) {
		switch {
		case cw > 1 && (cw >= 2*ch || ch == 1):
			cw--
		case ch > 1:
			ch--
		default:
			return viewport{}, true
		}
	}

	w, h := cols*cw+2, rows*ch+2
	frame := core.NewRect((screenW-w)/2, hudHeight, w, h)
	return viewport{
		frame: frame,
		inner: frame.Inset(1),
		cellW: cw,
		cellH: ch,
	}, false
}

// CellAt maps a screen position to the board cell drawn there.
func (v viewport) CellAt(screenX, screenY int) (board.Coord, bool) {
	if v.cellW == 0 || !v.inner.Contains(screenX, screenY) {
		return board.Coord{}, false
	}
	return board.C((screenX-v.inner.X)/v.cellW, (screenY-v.inner.Y)/v.cellH), true
}

// CellRect returns the screen area of board cell p.
func (v viewport) CellRect(p board.Coord) core.Rect {
	return core.NewRect(v.inner.X+p.X*v.cellW, v.inner.Y+p.Y*v.cellH, v.cellW, v.cellH)
}
