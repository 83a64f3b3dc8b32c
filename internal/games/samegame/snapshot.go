package samegame

import (
	"github.com/vovakirdan/tui-samegame/internal/games/samegame/board"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateStuck       GameStateType = "no_moves"
	StateWon         GameStateType = "won"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable game state in comparable form.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Board     string // board.Format output
	Width     int
	Height    int
	Cursor    board.Coord
	Group     int // size of the group under the cursor, 0 if it cannot pop
	Remaining int
	Colors    int
	Moves     int
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	grid := g.session.Grid()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWon
	case g.paused:
		state = StatePaused
	case !board.HasMoves(grid):
		state = StateStuck
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Board:     board.Format(grid),
		Width:     grid.Width(),
		Height:    grid.Height(),
		Cursor:    g.cursor,
		Group:     g.preview.Size(),
		Remaining: grid.FilledCount(),
		Colors:    len(grid.Colors()),
		Moves:     g.session.Moves(),
		State:     state,
	}
}
