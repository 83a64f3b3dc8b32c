package board_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-samegame/internal/games/samegame/board"
)

func TestPlayMoveScenarios(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		x, y   int
		expect string
		won    bool
	}{
		{
			name:   "row pops pair and slides left",
			input:  "AAB",
			x:      0,
			y:      0,
			expect: "B..",
		},
		{
			name:   "column pops pair and drops",
			input:  "A\nA\nB",
			x:      0,
			y:      0,
			expect: ".\n.\nB",
		},
		{
			name:   "all-empty board is unchanged",
			input:  "..\n..",
			x:      1,
			y:      1,
			expect: "..\n..",
			won:    true,
		},
		{
			name:   "single color board clears",
			input:  "AA\nAA",
			x:      1,
			y:      0,
			expect: "..\n..",
			won:    true,
		},
		{
			name:   "isolated tile is a no-op",
			input:  "AB\nBA",
			x:      0,
			y:      0,
			expect: "AB\nBA",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := board.MustParse(tc.input)
			got, err := board.PlayMove(g, tc.x, tc.y)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, board.Format(got))
			assert.Equal(t, tc.won, board.IsWon(got))
		})
	}
}

func TestPlayMoveOutOfBounds(t *testing.T) {
	g := board.MustParse("AA")
	got, err := board.PlayMove(g, 2, 0)
	assert.ErrorIs(t, err, board.ErrOutOfBounds)
	assert.True(t, got.Equal(g))
}

func TestPlayMoveIsolatedTileOnUnsettledGrid(t *testing.T) {
	// A no-op click returns the board as-is, even when it would settle.
	g := board.MustParse("A.\n.B")
	got, err := board.PlayMove(g, 0, 0)
	require.NoError(t, err)
	assert.True(t, got.Equal(g))
}

func TestPlayMoveSequence(t *testing.T) {
	g := board.MustParse(`
		ABA
		BBA
		ACC
	`)

	steps := []struct {
		x, y   int
		expect string
	}{
		{1, 1, "..A\nA.A\nACC"},
		{0, 2, ".A.\n.A.\nCC."},
		{1, 0, "...\n...\nCC."},
		{0, 2, "...\n...\n..."},
	}

	for i, step := range steps {
		var err error
		g, err = board.PlayMove(g, step.x, step.y)
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, step.expect, board.Format(g), "step %d", i)
		assert.True(t, g.IsSettled(), "step %d leaves a settled board", i)
	}
	assert.True(t, board.IsWon(g))
}

func TestPlayMoveProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	for i := 0; i < 30; i++ {
		g, err := board.RandomFill(1+rng.Intn(7), 1+rng.Intn(7), 1+rng.Intn(4), rng)
		require.NoError(t, err)

		// Play random clicks until the board is stuck, checking every move.
		for moves := 0; moves < 60 && board.HasMoves(g); moves++ {
			x, y := rng.Intn(g.Width()), rng.Intn(g.Height())
			c, err := g.At(x, y)
			require.NoError(t, err)
			preview := board.Preview(g, x, y)

			next, err := board.PlayMove(g, x, y)
			require.NoError(t, err)

			assert.Equal(t, g.Width(), next.Width(), "shape preserved")
			assert.Equal(t, g.Height(), next.Height(), "shape preserved")
			assert.True(t, next.IsSettled(), "settled after move:\n%s", next)
			assert.LessOrEqual(t, next.FilledCount(), g.FilledCount())

			switch {
			case c.IsEmpty():
				assert.True(t, next.Equal(g), "empty click is a no-op")
			case board.FindComponent(g, board.C(x, y)).Size() == 1:
				assert.True(t, next.Equal(g), "isolated click is a no-op")
				assert.Equal(t, 0, preview.Size())
			default:
				assert.Equal(t, g.FilledCount()-preview.Size(), next.FilledCount(),
					"a pop removes exactly the component")
			}
			g = next
		}
	}
}

func TestPlayMoveOnWonBoard(t *testing.T) {
	g, err := board.New(3, 2)
	require.NoError(t, err)
	require.True(t, board.IsWon(g))

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			next, err := board.PlayMove(g, x, y)
			require.NoError(t, err)
			assert.True(t, next.Equal(g))
		}
	}
}

func TestPreview(t *testing.T) {
	g := board.MustParse("AAB\nCDB")

	assert.Equal(t, []board.Coord{board.C(0, 0), board.C(1, 0)}, board.Preview(g, 1, 0).Coords())
	assert.Equal(t, []board.Coord{board.C(2, 0), board.C(2, 1)}, board.Preview(g, 2, 1).Coords())
	assert.Equal(t, 0, board.Preview(g, 0, 1).Size(), "lone tile has no preview")
	assert.Equal(t, 0, board.Preview(g, 9, 9).Size(), "off-board has no preview")
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		won      bool
		hasMoves bool
	}{
		{"empty", "..\n..", true, false},
		{"pair in row", "..\nAA", false, true},
		{"pair in column", "A.\nA.", false, true},
		{"checkerboard", "AB\nBA", false, false},
		{"single tile", "..\nA.", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := board.MustParse(tc.layout)
			assert.Equal(t, tc.won, board.IsWon(g))
			assert.Equal(t, tc.hasMoves, board.HasMoves(g))
			assert.False(t, board.IsLost(g), "the game never reports a loss")
		})
	}
}
