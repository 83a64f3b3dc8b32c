// Package samegame adapts the SameGame rules engine to the registry.Game
// interface: cursor and mouse input, rendering and restart handling.
package samegame

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-samegame/internal/core"
	"github.com/vovakirdan/tui-samegame/internal/games/samegame/board"
	"github.com/vovakirdan/tui-samegame/internal/registry"
)

// Mode selects the board size of a game variant.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeMini    Mode = "mini"
)

const (
	miniWidth  = 8
	miniHeight = 6
)

// Game implements SameGame on top of the board package.
type Game struct {
	mode    Mode
	opts    Options
	logger  *log.Logger
	rng     *rand.Rand
	session *Session
	tick    uint64

	cursor board.Coord
	// preview is the group under the cursor, recomputed after every change.
	preview board.Component

	screenW int
	screenH int
	view    viewport

	lastPopped int
	won        bool
	paused     bool
	tooSmall   bool
}

// New creates a game on the configured board size.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewMini creates a game on a small 8x6 board.
func NewMini() *Game {
	return &Game{mode: ModeMini}
}

func init() {
	registry.Register("samegame", func() registry.Game {
		return New()
	})
	registry.Register("samegame_mini", func() registry.Game {
		return NewMini()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeMini {
		return "samegame_mini"
	}
	return "samegame"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeMini {
		return "SameGame (Mini)"
	}
	return "SameGame"
}

// modeOptions returns the active options adjusted for the game's mode.
func (g *Game) modeOptions() Options {
	opts := CurrentOptions()
	if g.mode == ModeMini {
		opts.Width, opts.Height = miniWidth, miniHeight
		opts.Layout = nil
		opts.LayoutName = ""
	}
	return opts
}

// Summary describes the board this variant deals, for listings.
func (g *Game) Summary() string {
	opts := g.modeOptions()
	if opts.Layout != nil {
		return fmt.Sprintf("%dx%d, layout %s", opts.Layout.Width(), opts.Layout.Height(), opts.LayoutName)
	}
	return fmt.Sprintf("%dx%d, %d colors", opts.Width, opts.Height, opts.Colors)
}

// Reset deals a new board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.opts = g.modeOptions()
	g.logger = g.opts.Logger
	if g.logger == nil {
		g.logger = discardLogger()
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.lastPopped = 0
	g.won = false
	g.paused = false

	g.session = NewSession(g.deal())
	grid := g.session.Grid()
	g.cursor = board.C(0, grid.Height()-1)
	g.refresh()

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.logger.Debug("new board",
		"game", g.ID(),
		"size", g.sizeLabel(),
		"colors", len(grid.Colors()),
		"layout", g.opts.LayoutName,
	)
}

// deal builds the starting board from a layout or at random.
func (g *Game) deal() board.Grid {
	if g.opts.Layout != nil {
		return *g.opts.Layout
	}

	grid, err := board.RandomFill(g.opts.Width, g.opts.Height, g.opts.Colors, g.rng)
	if err != nil {
		// Options come from a validated config; fall back to the defaults.
		g.logger.Warn("invalid board options, using defaults", "error", err)
		def := DefaultOptions()
		g.opts.Width, g.opts.Height, g.opts.Colors = def.Width, def.Height, def.Colors
		grid, _ = board.RandomFill(def.Width, def.Height, def.Colors, g.rng)
	}
	return grid
}

// Resize adapts the layout to a new screen size and keeps the board.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	if g.session == nil {
		return
	}
	grid := g.session.Grid()
	g.view, g.tooSmall = fitViewport(grid.Width(), grid.Height(), g.opts.CellW, g.opts.CellH, screenW, screenH)
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.won {
		g.paused = !g.paused
	}
	if g.paused || g.won || in.Empty() {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	changed := false
	if p, ok := in.Click(); ok {
		if at, inBoard := g.view.CellAt(p.X, p.Y); inBoard {
			g.cursor = at
			changed = g.pop(at) || changed
		}
	}
	if in.Has(core.ActionSelect) {
		changed = g.pop(g.cursor) || changed
	}

	g.refresh()
	return core.StepResult{State: g.State(), Changed: changed}
}

func (g *Game) moveCursor(in core.InputFrame) {
	grid := g.session.Grid()
	x, y := g.cursor.X, g.cursor.Y

	switch {
	case in.Has(core.ActionUp):
		y--
	case in.Has(core.ActionDown):
		y++
	}
	switch {
	case in.Has(core.ActionLeft):
		x--
	case in.Has(core.ActionRight):
		x++
	}

	g.cursor = board.C(
		core.Clamp(x, 0, grid.Width()-1),
		core.Clamp(y, 0, grid.Height()-1),
	)
}

// pop clicks at and reports whether the board changed.
func (g *Game) pop(at board.Coord) bool {
	res, err := g.session.Play(at.X, at.Y)
	if err != nil {
		g.logger.Warn("move rejected", "error", err)
		return false
	}
	if res.Popped == 0 {
		return false
	}

	g.lastPopped = res.Popped
	g.won = res.Won
	g.logger.Debug("pop",
		"at", at.String(),
		"size", res.Popped,
		"remaining", res.Grid.FilledCount(),
		"won", res.Won,
	)
	if res.Won {
		g.logger.Info("board cleared", "game", g.ID(), "moves", g.session.Moves())
	}
	return true
}

// refresh recomputes the group under the cursor.
func (g *Game) refresh() {
	g.preview = board.Preview(g.session.Grid(), g.cursor.X, g.cursor.Y)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	remaining := 0
	if g.session != nil {
		remaining = g.session.Grid().FilledCount()
	}
	return core.GameState{
		Remaining: remaining,
		Won:       g.won,
		GameOver:  g.won,
		Paused:    g.paused,
	}
}

// Grid returns the current board.
func (g *Game) Grid() board.Grid {
	return g.session.Grid()
}

// Cursor returns the board cell under the cursor.
func (g *Game) Cursor() board.Coord {
	return g.cursor
}
