package samegame

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-samegame/internal/games/samegame/board"
)

// MoveResult describes one click applied to a Session.
type MoveResult struct {
	At     board.Coord
	Popped int  // tiles removed, 0 for a no-op click
	Won    bool // board is empty after the move
	Grid   board.Grid
}

// Session holds the current board of one game. The grid itself is
// immutable; the session swaps it under a lock on every move so a renderer
// may read it while input is being applied.
type Session struct {
	mu    sync.Mutex
	grid  board.Grid
	moves int
}

// NewSession starts a session on g.
func NewSession(g board.Grid) *Session {
	return &Session{grid: g}
}

// Grid returns the current board.
func (s *Session) Grid() board.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Moves returns the number of clicks that removed tiles.
func (s *Session) Moves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moves
}

// Play clicks (x, y) on the current board.
func (s *Session) Play(x, y int) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := board.C(x, y)
	next, err := board.PlayMove(s.grid, x, y)
	if err != nil {
		return MoveResult{At: at, Grid: s.grid}, fmt.Errorf("samegame: play %s: %w", at, err)
	}

	// A pop removes exactly the group's tiles; settling never adds or drops any.
	res := MoveResult{At: at, Grid: next}
	if popped := s.grid.FilledCount() - next.FilledCount(); popped > 0 {
		res.Popped = popped
		s.moves++
	}
	s.grid = next
	res.Won = board.IsWon(next)
	return res, nil
}
