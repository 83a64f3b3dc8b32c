package board

// Cell is the content of a single board position: Empty or a color
// identifier in [0, MaxPalette). Identifiers carry no order, only equality.
type Cell int8

// Empty marks a position with no tile.
const Empty Cell = -1

// MaxPalette is the largest number of distinct colors a board can hold.
const MaxPalette = 10

// MaxDimension bounds the width and height of a board.
const MaxDimension = 1024

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Valid reports whether c is Empty or a known color identifier.
func (c Cell) Valid() bool {
	return c == Empty || (c >= 0 && c < MaxPalette)
}

// Char returns the layout character for the cell: '.' for Empty and
// 'A', 'B', ... for colors 0, 1, ...
func (c Cell) Char() rune {
	if c == Empty {
		return '.'
	}
	if !c.Valid() {
		return '?'
	}
	return 'A' + rune(c)
}

// ParseCell converts a layout character back into a Cell.
// Accepts '.', ' ' and '_' for Empty, 'A'-'J' (any case) and '0'-'9' for colors.
func ParseCell(r rune) (Cell, bool) {
	switch {
	case r == '.' || r == ' ' || r == '_':
		return Empty, true
	case r >= 'A' && r < 'A'+MaxPalette:
		return Cell(r - 'A'), true
	case r >= 'a' && r < 'a'+MaxPalette:
		return Cell(r - 'a'), true
	case r >= '0' && r <= '9':
		return Cell(r - '0'), true
	default:
		return Empty, false
	}
}
