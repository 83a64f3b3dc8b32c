package board

import (
	"fmt"
	"math/rand"
	"sort"
)

// Grid is an immutable width x height board.
// Cells are stored in row-major order: index = y*width + x.
// The zero Grid has no cells; build grids with New, FromRows, FromCells or
// RandomFill.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New creates a grid with every cell empty.
// Both dimensions must lie in [1, MaxDimension].
func New(width, height int) (Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return Grid{}, err
	}
	return blank(width, height), nil
}

// checkDimensions rejects sizes outside [1, MaxDimension], so width*height
// never overflows.
func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d (want 1-%d per side)", ErrInvalidDimensions, width, height, MaxDimension)
	}
	return nil
}

// FromCells builds a grid from a flat row-major cell list.
// The list must hold exactly width*height valid cells.
func FromCells(width, height int, cells []Cell) (Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return Grid{}, err
	}
	if len(cells) != width*height {
		return Grid{}, fmt.Errorf("%w: %d cells for %dx%d", ErrInvalidDimensions, len(cells), width, height)
	}
	for i, c := range cells {
		if !c.Valid() {
			return Grid{}, fmt.Errorf("%w: cell %d has value %d", ErrInvalidLayout, i, c)
		}
	}
	owned := make([]Cell, len(cells))
	copy(owned, cells)
	return Grid{width: width, height: height, cells: owned}, nil
}

// FromRows builds a grid from height rows of width cells, top row first.
func FromRows(rows [][]Cell) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: no cells", ErrInvalidDimensions)
	}
	width, height := len(rows[0]), len(rows)
	if err := checkDimensions(width, height); err != nil {
		return Grid{}, err
	}
	cells := make([]Cell, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, y, len(row), width)
		}
		cells = append(cells, row...)
	}
	return FromCells(width, height, cells)
}

// RandomFill creates a full grid where every cell is an independent, uniform
// pick from [0, paletteSize).
func RandomFill(width, height, paletteSize int, rng *rand.Rand) (Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return Grid{}, err
	}
	if paletteSize < 1 || paletteSize > MaxPalette {
		return Grid{}, fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidPalette, paletteSize, MaxPalette)
	}

	g := blank(width, height)
	for i := range g.cells {
		g.cells[i] = Cell(rng.Intn(paletteSize))
	}
	return g, nil
}

// blank allocates a grid of empty cells. Dimensions are not validated.
func blank(width, height int) Grid {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Empty
	}
	return Grid{width: width, height: height, cells: cells}
}

// clone returns a grid with its own copy of the cell buffer.
// Only this package writes to the copy, and only before handing it out.
func (g Grid) clone() Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return Grid{width: g.width, height: g.height, cells: cells}
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) lies on the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y).
func (g Grid) At(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Empty, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.cell(x, y), nil
}

func (g Grid) index(x, y int) int {
	return y*g.width + x
}

// cell reads (x, y) without bounds checks.
func (g Grid) cell(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// set writes (x, y). Callers must own the buffer.
func (g Grid) set(x, y int, c Cell) {
	g.cells[g.index(x, y)] = c
}

// columnEmpty reports whether every cell of column x is empty.
func (g Grid) columnEmpty(x int) bool {
	for y := 0; y < g.height; y++ {
		if g.cell(x, y) != Empty {
			return false
		}
	}
	return true
}

// Rows returns a copy of the cells as height rows of width cells.
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.height)
	for y := range rows {
		rows[y] = make([]Cell, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// FilledCount returns the number of non-empty cells.
func (g Grid) FilledCount() int {
	count := 0
	for _, c := range g.cells {
		if c != Empty {
			count++
		}
	}
	return count
}

// Colors returns the distinct colors still on the board in ascending order.
func (g Grid) Colors() []Cell {
	seen := make(map[Cell]bool)
	for _, c := range g.cells {
		if c != Empty {
			seen[c] = true
		}
	}
	colors := make([]Cell, 0, len(seen))
	for c := range seen {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		return colors[i] < colors[j]
	})
	return colors
}

// Equal returns true if two grids have the same dimensions and contents.
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// IsSettled reports whether no tile floats above an empty cell and no empty
// column sits to the left of an occupied one.
func (g Grid) IsSettled() bool {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height-1; y++ {
			if g.cell(x, y) == Empty && g.cell(x, y+1) != Empty {
				return false
			}
		}
	}

	sawEmpty := false
	for x := 0; x < g.width; x++ {
		empty := g.columnEmpty(x)
		if sawEmpty && !empty {
			return false
		}
		sawEmpty = sawEmpty || empty
	}
	return true
}

// String renders the grid in layout form (see Format).
func (g Grid) String() string {
	return Format(g)
}
