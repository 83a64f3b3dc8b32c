package samegame

import (
	"fmt"

	"github.com/vovakirdan/tui-samegame/internal/core"
	"github.com/vovakirdan/tui-samegame/internal/games/samegame/board"
)

const (
	tileRune      = '█'
	highlightRune = '▒'
	cursorRune    = '◆'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	grid := g.session.Grid()
	need := fmt.Sprintf("Need %dx%d, have %dx%d",
		grid.Width()+2, grid.Height()+2+hudHeight+footerHeight, g.screenW, g.screenH)
	dst.DrawTextCentered(y+1, need)
}

func (g *Game) renderHUD(dst *core.Screen) {
	grid := g.session.Grid()
	frame := g.view.frame

	title := g.Title()
	if g.opts.LayoutName != "" {
		title = fmt.Sprintf("%s - %s", title, g.opts.LayoutName)
	}
	dst.DrawTextWithColor(frame.X+(frame.W-len([]rune(title)))/2, 0, title, core.ColorBrightWhite)

	stats := fmt.Sprintf("Tiles: %d  Colors: %d", grid.FilledCount(), len(grid.Colors()))
	dst.DrawText(frame.X, 1, stats)

	group := fmt.Sprintf("Group: %d", g.preview.Size())
	if g.preview.Size() == 0 && g.lastPopped > 0 {
		group = fmt.Sprintf("Last: %d", g.lastPopped)
	}
	groupX := core.Max(frame.X+len(stats)+2, frame.Right()-len(group))
	dst.DrawText(groupX, 1, group)
}

func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.session.Grid()
	dst.DrawBox(g.view.frame, core.ColorGray)

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := board.C(x, y)
			c, _ := grid.At(x, y)
			if c.IsEmpty() {
				continue
			}

			r := tileRune
			if g.preview.Has(p) {
				r = highlightRune
			}
			dst.DrawRect(g.view.CellRect(p), r, g.opts.Palette.ColorOf(c))
		}
	}

	if !g.won {
		g.renderCursor(dst)
	}
}

// renderCursor brackets the cursor cell, or marks it when cells are too
// narrow for brackets.
func (g *Game) renderCursor(dst *core.Screen) {
	rect := g.view.CellRect(g.cursor)
	if rect.W < 3 {
		cx, cy := rect.Center()
		dst.SetWithColor(cx, cy, cursorRune, core.ColorBrightWhite)
		return
	}
	for y := rect.Y; y < rect.Bottom(); y++ {
		dst.SetWithColor(rect.X, y, '[', core.ColorBrightWhite)
		dst.SetWithColor(rect.Right()-1, y, ']', core.ColorBrightWhite)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	if g.won || board.HasMoves(g.session.Grid()) {
		return
	}
	y := g.view.frame.Bottom()
	dst.DrawTextCenteredWithColor(y, "No moves left - press R for a new board", core.ColorYellow)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	cx, cy := g.view.frame.Center()

	if g.paused {
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
		return
	}

	if g.won {
		moves := fmt.Sprintf("Cleared in %d moves", g.session.Moves())
		g.drawOverlay(dst, cx, cy, "BOARD CLEARED!", moves, "Press R to play again")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// sizeLabel returns the board size as "WxH".
func (g *Game) sizeLabel() string {
	grid := g.session.Grid()
	return fmt.Sprintf("%dx%d", grid.Width(), grid.Height())
}
