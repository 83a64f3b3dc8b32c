package board_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-samegame/internal/games/samegame/board"
)

func TestSettleVertical(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "single floating tile drops",
			input:  "A.\n..\n..",
			expect: "..\n..\nA.",
		},
		{
			name:   "order within column is kept",
			input:  "A\n.\nB\n.\nC\n.",
			expect: ".\n.\n.\nA\nB\nC",
		},
		{
			name:   "columns settle independently",
			input:  "AB\n.C\nD.",
			expect: "..\nAB\nDC",
		},
		{
			name:   "already settled",
			input:  "..\nAB",
			expect: "..\nAB",
		},
		{
			name:   "empty columns stay in place",
			input:  ".A.\n...\n...",
			expect: "...\n...\n.A.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := board.SettleVertical(board.MustParse(tc.input))
			assert.Equal(t, tc.expect, board.Format(got))
		})
	}
}

func TestSettleHorizontal(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "empty first column",
			input:  ".A\n.B",
			expect: "A.\nB.",
		},
		{
			name:   "several gaps keep column order",
			input:  ".A.B.C",
			expect: "ABC...",
		},
		{
			name:   "partial column is not removed",
			input:  "...\nA.B",
			expect: "...\nAB.",
		},
		{
			name:   "nothing to move",
			input:  "AB.\nAB.",
			expect: "AB.\nAB.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := board.SettleHorizontal(board.MustParse(tc.input))
			assert.Equal(t, tc.expect, board.Format(got))
		})
	}
}

func TestSettleOrder(t *testing.T) {
	// Column 3 has a hole that must close before the column slides left
	// past the two empty ones.
	g := board.MustParse(`
		A..C
		B...
		B..D
	`)

	got := board.Settle(g)
	assert.Equal(t, "A...\nBC..\nBD..", board.Format(got))
	assert.True(t, got.IsSettled())
}

func TestSettlePreservesShapeAndInput(t *testing.T) {
	g := board.MustParse("A.B\n...\n.C.")
	before := board.Format(g)

	got := board.Settle(g)
	assert.Equal(t, g.Width(), got.Width())
	assert.Equal(t, g.Height(), got.Height())
	assert.Equal(t, g.FilledCount(), got.FilledCount())
	assert.Equal(t, before, board.Format(g), "Settle must not mutate its input")
}

func TestSettleFixedPointOnSettledGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 50; i++ {
		g := randomSparseGrid(t, rng, 1+rng.Intn(8), 1+rng.Intn(8))
		settled := board.Settle(g)
		require.True(t, settled.IsSettled(), "Settle output must satisfy invariants:\n%s", settled)
		assert.True(t, board.Settle(settled).Equal(settled), "Settle on a settled grid changed it:\n%s", settled)
	}
}

// randomSparseGrid builds a grid with random holes, not necessarily settled.
func randomSparseGrid(t *testing.T, rng *rand.Rand, w, h int) board.Grid {
	t.Helper()

	cells := make([]board.Cell, w*h)
	for i := range cells {
		if rng.Intn(3) == 0 {
			cells[i] = board.Empty
		} else {
			cells[i] = board.Cell(rng.Intn(3))
		}
	}
	g, err := board.FromCells(w, h, cells)
	require.NoError(t, err)
	return g
}
